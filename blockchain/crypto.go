package blockchain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

func uint64ToBytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// Timestamps are hashed by their IEEE-754 bit pattern so that every node
// feeds the primitive identical bytes for the same fractional-second value.
func float64ToBytes(f float64) []byte {
	return uint64ToBytes(math.Float64bits(f))
}

// HashFields computes the hex digest over the four sealed fields,
// concatenated in order.
func HashFields(index uint64, previousHash string, timestamp float64, payload string) string {
	h := sha256.New()
	h.Write(uint64ToBytes(index))
	h.Write([]byte(previousHash))
	h.Write(float64ToBytes(timestamp))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// HashBlock recomputes a block's digest from its own fields.
func HashBlock(b *Block) string {
	return HashFields(b.Index, b.PreviousHash, b.Timestamp, b.Payload)
}

package blockchain

import "time"

// NextBlock forges the successor of prev carrying payload. It has no side
// effects; the caller decides whether the result joins a chain.
func NextBlock(prev Block, payload string) Block {
	b := Block{
		Index:        prev.Index + 1,
		PreviousHash: prev.Hash,
		Timestamp:    float64(time.Now().UnixNano()) / float64(time.Second),
		Payload:      payload,
	}
	b.Hash = HashBlock(&b)
	return b
}

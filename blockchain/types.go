package blockchain

// Block is a single hash-sealed record in the replicated ledger.
//
// Blocks are immutable once forged. The Hash field is never trusted on any
// ingestion path; validators recompute it from the other four fields.
type Block struct {
	Index        uint64  `json:"index"`
	PreviousHash string  `json:"previous_hash"`
	Timestamp    float64 `json:"timestamp"`
	Payload      string  `json:"payload"`
	Hash         string  `json:"hash"`
}

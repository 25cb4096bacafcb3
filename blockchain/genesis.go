package blockchain

// PreviousHashSentinel marks a block with no predecessor.
const PreviousHashSentinel = "0"

// The genesis timestamp is a constant, never the wall clock, so every node
// constructs a byte-identical genesis block.
const (
	genesisTimestamp = 1465154705
	genesisPayload   = "genesis"
)

// GenesisBlock is the fixed first block every valid chain must begin with.
var GenesisBlock Block

func init() {
	GenesisBlock = Block{
		Index:        0,
		PreviousHash: PreviousHashSentinel,
		Timestamp:    genesisTimestamp,
		Payload:      genesisPayload,
	}
	GenesisBlock.Hash = HashBlock(&GenesisBlock)
}

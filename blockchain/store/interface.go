package store

import (
	"goledger/blockchain"
)

// ChainStore owns a node's single chain instance. Implementations must make
// check-then-append and check-then-replace atomic so that callers on
// different goroutines never observe a partial chain.
type ChainStore interface {
	// Latest returns the tip of the chain. Fails with EmptyChainError if
	// the chain somehow has zero blocks.
	Latest() (blockchain.Block, error)

	// Blocks returns a snapshot copy of the whole chain, genesis first.
	Blocks() []blockchain.Block

	// Height returns the number of blocks, genesis included.
	Height() int

	// Append validates block against the current tip and adds it.
	Append(block blockchain.Block) error

	// ReplaceIfLonger swaps the chain wholesale for candidate iff candidate
	// validates from genesis and is strictly longer. Equal length keeps the
	// incumbent. Reports whether the swap happened.
	ReplaceIfLonger(candidate []blockchain.Block) (bool, error)
}

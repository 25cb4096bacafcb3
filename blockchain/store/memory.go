package store

import (
	"fmt"
	"sync"

	"goledger/blockchain"
)

// MemoryChainStore keeps the chain in process memory for the process
// lifetime. A single mutex guards every access so the validate-then-mutate
// sequences stay atomic.
type MemoryChainStore struct {
	mu     sync.RWMutex
	blocks []blockchain.Block
}

// NewMemoryChainStore returns a store seeded with the genesis block.
func NewMemoryChainStore() *MemoryChainStore {
	return &MemoryChainStore{
		blocks: []blockchain.Block{blockchain.GenesisBlock},
	}
}

func (m *MemoryChainStore) Latest() (blockchain.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.blocks) == 0 {
		return blockchain.Block{}, &blockchain.EmptyChainError{}
	}
	return m.blocks[len(m.blocks)-1], nil
}

func (m *MemoryChainStore) Blocks() []blockchain.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]blockchain.Block, len(m.blocks))
	copy(snapshot, m.blocks)
	return snapshot
}

func (m *MemoryChainStore) Height() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blocks)
}

// Append validates block against the current tip and adds it to the end.
// Validation and append happen under one lock acquisition, so a concurrent
// caller cannot slip a block in between the check and the mutation.
func (m *MemoryChainStore) Append(block blockchain.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.blocks) == 0 {
		return &blockchain.EmptyChainError{}
	}

	tip := m.blocks[len(m.blocks)-1]
	if err := blockchain.ValidateSuccessor(&block, &tip); err != nil {
		return fmt.Errorf("append rejected: %w", err)
	}

	m.blocks = append(m.blocks, block)
	return nil
}

// ReplaceIfLonger is the node's entire fork-choice rule: longest valid chain
// wins, equal length strictly favors the incumbent. The swap is wholesale
// and atomic; no partial chain is ever visible.
func (m *MemoryChainStore) ReplaceIfLonger(candidate []blockchain.Block) (bool, error) {
	if err := blockchain.ValidateChain(candidate); err != nil {
		return false, fmt.Errorf("replacement rejected: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(candidate) <= len(m.blocks) {
		return false, nil
	}

	chain := make([]blockchain.Block, len(candidate))
	copy(chain, candidate)
	m.blocks = chain
	return true, nil
}

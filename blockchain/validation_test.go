package blockchain

import (
	"fmt"
	"testing"
)

// chainOf builds a valid chain of n blocks, genesis included.
func chainOf(n int) []Block {
	blocks := []Block{GenesisBlock}
	for i := 1; i < n; i++ {
		blocks = append(blocks, NextBlock(blocks[i-1], fmt.Sprintf("payload-%d", i)))
	}
	return blocks
}

func TestValidateSuccessor(t *testing.T) {
	prev := GenesisBlock
	valid := NextBlock(prev, "hello")

	tests := []struct {
		name       string
		mutate     func(b *Block)
		wantReason Reason
	}{
		{
			name:   "freshly forged successor is valid",
			mutate: func(b *Block) {},
		},
		{
			name:       "index skips ahead",
			mutate:     func(b *Block) { b.Index = prev.Index + 2 },
			wantReason: BadIndex,
		},
		{
			name:       "index repeats predecessor",
			mutate:     func(b *Block) { b.Index = prev.Index },
			wantReason: BadIndex,
		},
		{
			name:       "previous hash does not link",
			mutate:     func(b *Block) { b.PreviousHash = "deadbeef" },
			wantReason: BadPreviousHash,
		},
		{
			name:       "tampered payload",
			mutate:     func(b *Block) { b.Payload = "tampered" },
			wantReason: BadHash,
		},
		{
			name:       "tampered timestamp",
			mutate:     func(b *Block) { b.Timestamp += 0.5 },
			wantReason: BadHash,
		},
		{
			name:       "tampered hash",
			mutate:     func(b *Block) { b.Hash = "0000" + b.Hash[4:] },
			wantReason: BadHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := valid
			tt.mutate(&candidate)

			err := ValidateSuccessor(&candidate, &prev)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ValidateSuccessor() unexpected error = %v", err)
				}
				return
			}

			verr, ok := IsValidation(err)
			if !ok {
				t.Fatalf("ValidateSuccessor() error = %v, want ValidationError", err)
			}
			if verr.Reason != tt.wantReason {
				t.Errorf("ValidateSuccessor() reason = %s, want %s", verr.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateChain(t *testing.T) {
	wrongGenesis := GenesisBlock
	wrongGenesis.Payload = "not-genesis"
	wrongGenesis.Hash = HashBlock(&wrongGenesis)

	broken := chainOf(4)
	broken[2].Payload = "rewritten history"

	tests := []struct {
		name       string
		blocks     []Block
		wantErr    bool
		wantReason Reason
	}{
		{
			name:   "genesis alone is valid",
			blocks: []Block{GenesisBlock},
		},
		{
			name:   "multi block chain is valid",
			blocks: chainOf(5),
		},
		{
			name:       "self-consistent chain with wrong genesis",
			blocks:     []Block{wrongGenesis, NextBlock(wrongGenesis, "x")},
			wantErr:    true,
			wantReason: BadGenesis,
		},
		{
			name:       "tampered middle block",
			blocks:     broken,
			wantErr:    true,
			wantReason: BadHash,
		},
		{
			name:    "empty chain",
			blocks:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChain(tt.blocks)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateChain() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateChain() expected error, got nil")
			}
			if tt.wantReason != "" {
				verr, ok := IsValidation(err)
				if !ok {
					t.Fatalf("ValidateChain() error = %v, want ValidationError", err)
				}
				if verr.Reason != tt.wantReason {
					t.Errorf("ValidateChain() reason = %s, want %s", verr.Reason, tt.wantReason)
				}
			}
		})
	}
}

func TestEmptyChainErrorIsLoud(t *testing.T) {
	err := ValidateChain(nil)
	if !IsEmptyChain(err) {
		t.Fatalf("ValidateChain(nil) = %v, want EmptyChainError", err)
	}
	if _, ok := IsValidation(err); ok {
		t.Error("empty chain should not be reported as a plain validation failure")
	}
}

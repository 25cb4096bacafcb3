package blockchain

import "testing"

// Every node must construct a byte-identical genesis block; these pin the
// fixed fields so an accidental change breaks loudly.
func TestGenesisBlockIsFixed(t *testing.T) {
	if GenesisBlock.Index != 0 {
		t.Errorf("Index = %d, want 0", GenesisBlock.Index)
	}
	if GenesisBlock.PreviousHash != PreviousHashSentinel {
		t.Errorf("PreviousHash = %q, want %q", GenesisBlock.PreviousHash, PreviousHashSentinel)
	}
	if GenesisBlock.Timestamp != genesisTimestamp {
		t.Errorf("Timestamp = %f, want %d", GenesisBlock.Timestamp, genesisTimestamp)
	}
	if GenesisBlock.Payload != genesisPayload {
		t.Errorf("Payload = %q, want %q", GenesisBlock.Payload, genesisPayload)
	}
}

func TestGenesisHashMatchesFields(t *testing.T) {
	if got := HashBlock(&GenesisBlock); got != GenesisBlock.Hash {
		t.Errorf("recomputed hash %s does not match stored %s", got, GenesisBlock.Hash)
	}
	if len(GenesisBlock.Hash) != 64 {
		t.Errorf("digest length = %d, want 64 hex characters", len(GenesisBlock.Hash))
	}
}

func TestGenesisOnlyChainValidates(t *testing.T) {
	if err := ValidateChain([]Block{GenesisBlock}); err != nil {
		t.Fatalf("ValidateChain([genesis]) = %v, want nil", err)
	}
}

package blockchain

// ValidateSuccessor checks that candidate extends prev by exactly one block.
// Pure: no side effects, no chain context beyond the two blocks. The nil
// return means the candidate is acceptable; otherwise the error is a
// *ValidationError carrying the failed check.
func ValidateSuccessor(candidate, prev *Block) error {
	if candidate.Index != prev.Index+1 {
		return &ValidationError{Reason: BadIndex, Index: candidate.Index}
	}
	if candidate.PreviousHash != prev.Hash {
		return &ValidationError{Reason: BadPreviousHash, Index: candidate.Index}
	}
	if HashBlock(candidate) != candidate.Hash {
		return &ValidationError{Reason: BadHash, Index: candidate.Index}
	}
	return nil
}

// ValidateChain checks an entire candidate chain: element 0 must be
// identical to the canonical genesis block, and each later element must be
// a valid successor of the candidate element before it, not of whatever the
// local chain holds. Short-circuits on the first failure.
func ValidateChain(blocks []Block) error {
	if len(blocks) == 0 {
		return &EmptyChainError{}
	}
	if blocks[0] != GenesisBlock {
		return &ValidationError{Reason: BadGenesis, Index: 0}
	}
	for i := 1; i < len(blocks); i++ {
		if err := ValidateSuccessor(&blocks[i], &blocks[i-1]); err != nil {
			return err
		}
	}
	return nil
}

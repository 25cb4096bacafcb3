package handlers

import (
	"encoding/json"
	"net/http"

	"goledger/blockchain/store"
)

// HandleBlocks serves the full serialized chain.
func HandleBlocks(w http.ResponseWriter, r *http.Request, chainStore store.ChainStore) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chainStore.Blocks())
}

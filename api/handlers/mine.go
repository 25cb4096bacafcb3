package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"goledger/blockchain"
	"goledger/blockchain/store"
)

// PeerService is the slice of the peer synchronizer the control surface
// needs. Declared here so the api package never imports p2p directly.
type PeerService interface {
	BroadcastLatest()
	Connect(address string) error
	PeerAddresses() []string
}

type mineRequest struct {
	Payload string `json:"payload"`
}

// HandleMineBlock forges a successor block from the request payload, appends
// it, and broadcasts the new tip. The response returns as soon as the local
// mutation and the broadcast attempt have been issued; peer convergence is
// not awaited.
func HandleMineBlock(w http.ResponseWriter, r *http.Request, chainStore store.ChainStore, peers PeerService) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req mineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	latest, err := chainStore.Latest()
	if err != nil {
		http.Error(w, fmt.Sprintf("Chain unavailable: %v", err), http.StatusInternalServerError)
		return
	}

	block := blockchain.NextBlock(latest, req.Payload)
	if err := chainStore.Append(block); err != nil {
		http.Error(w, fmt.Sprintf("Block rejected: %v", err), http.StatusInternalServerError)
		return
	}

	peers.BroadcastLatest()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(block)
}

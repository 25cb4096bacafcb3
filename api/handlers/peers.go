package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HandlePeers lists the address:port of every registered connection.
func HandlePeers(w http.ResponseWriter, r *http.Request, peers PeerService) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(peers.PeerAddresses())
}

type addPeerRequest struct {
	Peer string `json:"peer"`
}

// HandleAddPeer initiates an outbound connection to the given address.
func HandleAddPeer(w http.ResponseWriter, r *http.Request, peers PeerService) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addPeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Peer == "" {
		http.Error(w, "Invalid JSON: expected {\"peer\": \"host:port\"}", http.StatusBadRequest)
		return
	}

	if err := peers.Connect(req.Peer); err != nil {
		http.Error(w, fmt.Sprintf("Connect failed: %v", err), http.StatusBadGateway)
		return
	}

	response := map[string]string{
		"status": "success",
		"peer":   req.Peer,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

package p2p

import (
	"goledger/blockchain"
)

// Broadcast sends msg to every currently registered connection, best effort.
// The registry is snapshotted first so a connection closing mid-broadcast
// cannot corrupt the iteration; a failed send deregisters only that peer.
func (s *Server) Broadcast(msg *Message) {
	for _, peer := range s.registry.Snapshot() {
		if err := peer.Send(msg); err != nil {
			s.logger.Warn("broadcast failed, dropping peer", "peer", peer.Address, "err", err)
			s.registry.Remove(peer.Address)
		}
	}
}

// BroadcastLatest gossips the current tip to every peer. Called after any
// local chain mutation so the rest of the network can catch up.
func (s *Server) BroadcastLatest() {
	latest, err := s.store.Latest()
	if err != nil {
		s.logger.Error("nothing to broadcast", "err", err)
		return
	}

	msg, err := NewChainResponse([]blockchain.Block{latest})
	if err != nil {
		s.logger.Error("encoding broadcast failed", "err", err)
		return
	}

	s.Broadcast(msg)
}

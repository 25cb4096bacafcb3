package p2p

import (
	"goledger/blockchain"
)

// ProcessMessage dispatches one wire message. Malformed payloads and unknown
// types are logged and dropped: no state mutation, and the connection stays
// up.
func ProcessMessage(server *Server, msg *Message, peer *Peer) {
	switch msg.Type {
	case MessageTypeQueryLatest:
		handleQueryLatest(server, peer)
	case MessageTypeQueryAll:
		handleQueryAll(server, peer)
	case MessageTypeChainResponse:
		handleChainResponse(server, msg, peer)
	default:
		server.logger.Warn("unknown message type", "type", msg.Type, "peer", peer.Address)
	}
}

// handleQueryLatest replies with a single-block chain response holding the
// local tip.
func handleQueryLatest(server *Server, peer *Peer) {
	latest, err := server.store.Latest()
	if err != nil {
		server.logger.Error("local tip unavailable", "err", err)
		return
	}

	server.reply(peer, []blockchain.Block{latest})
}

// handleQueryAll replies with the full local chain.
func handleQueryAll(server *Server, peer *Peer) {
	server.reply(peer, server.store.Blocks())
}

func (s *Server) reply(peer *Peer, blocks []blockchain.Block) {
	msg, err := NewChainResponse(blocks)
	if err != nil {
		s.logger.Error("encoding chain response failed", "err", err)
		return
	}
	if err := peer.Send(msg); err != nil {
		s.logger.Warn("reply failed, dropping peer", "peer", peer.Address, "err", err)
		s.registry.Remove(peer.Address)
	}
}

// handleChainResponse reconciles the local chain with what the peer sent:
// either its lone tip from a gossip round, or its whole chain after a
// query_all.
func handleChainResponse(server *Server, msg *Message, peer *Peer) {
	blocks, err := msg.ParseBlocks()
	if err != nil {
		server.logger.Warn("malformed chain response", "peer", peer.Address, "err", err)
		return
	}
	if len(blocks) == 0 {
		return
	}

	receivedLatest := blocks[len(blocks)-1]
	myLatest, err := server.store.Latest()
	if err != nil {
		server.logger.Error("local tip unavailable", "err", err)
		return
	}

	switch {
	case receivedLatest.Index <= myLatest.Index:
		// Already caught up or ahead.
		return

	case receivedLatest.PreviousHash == myLatest.Hash:
		// Peer is exactly one block ahead and linked to our tip.
		if err := server.store.Append(receivedLatest); err != nil {
			server.logger.Warn("rejected gossiped block", "peer", peer.Address, "err", err)
			return
		}
		server.logger.Info("appended block from peer",
			"index", receivedLatest.Index, "peer", peer.Address)
		server.BroadcastLatest()

	case len(blocks) == 1:
		// A lone block we cannot splice onto our tip: ask for the peer's
		// whole chain on the same connection.
		query, err := NewMessage(MessageTypeQueryAll, nil)
		if err != nil {
			return
		}
		if err := peer.Send(query); err != nil {
			server.logger.Warn("query_all failed, dropping peer", "peer", peer.Address, "err", err)
			server.registry.Remove(peer.Address)
		}

	default:
		replaced, err := server.store.ReplaceIfLonger(blocks)
		if err != nil {
			server.logger.Warn("rejected candidate chain", "peer", peer.Address, "err", err)
			return
		}
		if !replaced {
			server.logger.Info("kept local chain",
				"peer", peer.Address, "candidate_length", len(blocks))
			return
		}
		server.logger.Info("replaced local chain",
			"length", len(blocks), "peer", peer.Address)
		server.BroadcastLatest()
	}
}

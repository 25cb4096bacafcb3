package p2p

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/cenkalti/backoff"

	"goledger/blockchain/store"
)

// Config holds peer synchronizer configuration.
type Config struct {
	Port     string
	NodeName string
	Store    store.ChainStore
	Logger   *slog.Logger
}

// Server maintains the set of live peer connections and runs the gossip
// protocol symmetrically toward each of them.
type Server struct {
	config   Config
	store    store.ChainStore
	registry *Registry
	listener net.Listener
	logger   *slog.Logger
}

// NewServer creates a synchronizer around the given chain store.
func NewServer(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.NodeName != "" {
		logger = logger.With("node", config.NodeName)
	}

	return &Server{
		config:   config,
		store:    config.Store,
		registry: NewRegistry(),
		logger:   logger,
	}
}

// Start begins listening for inbound peer connections.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", ":"+s.config.Port)
	if err != nil {
		return err
	}
	s.listener = listener
	s.logger.Info("p2p listening", "addr", listener.Addr().String())

	go s.acceptConnections()
	return nil
}

// Stop closes the listener and tears down every registered connection.
func (s *Server) Stop() error {
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	for _, peer := range s.registry.Snapshot() {
		s.registry.Remove(peer.Address)
	}
	return err
}

// Addr returns the actual listen address, useful when Port was "0".
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// PeerAddresses lists the remote addresses currently registered.
func (s *Server) PeerAddresses() []string {
	return s.registry.Addresses()
}

func (s *Server) acceptConnections() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("accept failed", "err", err)
			continue
		}
		go s.HandlePeerConnection(conn)
	}
}

// Connect dials a remote peer and hands the connection to the synchronizer.
// Dialing an already-registered address is a no-op.
func (s *Server) Connect(address string) error {
	if s.registry.Has(address) {
		return nil
	}

	conn, err := net.DialTimeout("tcp", address, 5*time.Second)
	if err != nil {
		return err
	}

	go s.HandlePeerConnection(conn)
	return nil
}

// ConnectWithRetry dials with bounded exponential backoff. This exists for
// seed peers at startup, which may still be booting alongside this process.
// Dropped connections are never redialed automatically.
func (s *Server) ConnectWithRetry(address string, maxRetries uint64) error {
	dial := func() error { return s.Connect(address) }
	return backoff.Retry(dial, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries))
}

// HandlePeerConnection registers conn, sends the opening query_latest, and
// runs the decode loop until the connection dies. Runs for both inbound and
// outbound connections; the protocol is symmetric.
func (s *Server) HandlePeerConnection(conn net.Conn) {
	peer, ok := s.registry.Add(conn)
	if !ok {
		conn.Close()
		return
	}
	s.logger.Info("peer connected", "peer", peer.Address)

	query, err := NewMessage(MessageTypeQueryLatest, nil)
	if err != nil {
		s.registry.Remove(peer.Address)
		return
	}
	if err := peer.Send(query); err != nil {
		s.logger.Warn("opening query failed", "peer", peer.Address, "err", err)
		s.registry.Remove(peer.Address)
		return
	}

	s.handleMessages(conn, peer)
}

// handleMessages decodes envelopes off the wire until error or close, then
// deregisters the connection. No reconnect is attempted.
func (s *Server) handleMessages(conn net.Conn, peer *Peer) {
	defer s.registry.Remove(peer.Address)

	decoder := json.NewDecoder(conn)
	for {
		var msg Message
		if err := decoder.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				s.logger.Info("peer disconnected", "peer", peer.Address)
			} else {
				s.logger.Warn("peer stream error", "peer", peer.Address, "err", err)
			}
			return
		}

		ProcessMessage(s, &msg, peer)
	}
}

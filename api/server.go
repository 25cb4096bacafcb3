package api

import (
	"log/slog"
	"net/http"

	"goledger/api/handlers"
	"goledger/blockchain/store"
)

// Server is the operator-facing HTTP control surface.
type Server struct {
	store  store.ChainStore
	peers  handlers.PeerService
	port   string
	mux    *http.ServeMux
	logger *slog.Logger
}

// NewServer wires the control surface to a chain store and peer service.
func NewServer(chainStore store.ChainStore, peers handlers.PeerService, port string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	server := &Server{
		store:  chainStore,
		peers:  peers,
		port:   port,
		mux:    http.NewServeMux(),
		logger: logger,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/blocks", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleBlocks(w, r, s.store)
	})
	s.mux.HandleFunc("/mineBlock", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleMineBlock(w, r, s.store, s.peers)
	})
	s.mux.HandleFunc("/peers", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandlePeers(w, r, s.peers)
	})
	s.mux.HandleFunc("/addPeer", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleAddPeer(w, r, s.peers)
	})
}

// Handler exposes the route table, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins serving HTTP requests and blocks until the listener fails.
func (s *Server) Start() error {
	s.logger.Info("control surface listening", "port", s.port)
	return http.ListenAndServe(":"+s.port, s.mux)
}

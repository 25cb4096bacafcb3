package node

import (
	"fmt"
	"log/slog"
	"strconv"

	"goledger/api"
	"goledger/blockchain/store"
	"goledger/config"
	"goledger/p2p"
)

// Seed peers may be booting alongside this process, so the first dials retry
// a few times before giving up.
const seedDialRetries = 4

// FullNode wires the chain store, the peer synchronizer and the HTTP control
// surface into one process.
type FullNode struct {
	config    config.Config
	store     store.ChainStore
	p2pServer *p2p.Server
	apiServer *api.Server
	discovery *p2p.Discovery
	logger    *slog.Logger
}

// New assembles a node from its configuration. The store comes up already
// seeded with the genesis block.
func New(cfg config.Config, logger *slog.Logger) *FullNode {
	if logger == nil {
		logger = slog.Default()
	}

	chainStore := store.NewMemoryChainStore()

	p2pServer := p2p.NewServer(p2p.Config{
		Port:     cfg.P2PPort,
		NodeName: cfg.NodeName,
		Store:    chainStore,
		Logger:   logger,
	})

	apiServer := api.NewServer(chainStore, p2pServer, cfg.HTTPPort, logger)

	return &FullNode{
		config:    cfg,
		store:     chainStore,
		p2pServer: p2pServer,
		apiServer: apiServer,
		logger:    logger.With("node", cfg.NodeName),
	}
}

// StartP2P brings up the peer listener, dials the configured seed peers and
// optionally starts mDNS discovery.
func (n *FullNode) StartP2P() error {
	if err := n.p2pServer.Start(); err != nil {
		return fmt.Errorf("p2p start: %w", err)
	}

	for _, peer := range n.config.Peers {
		go func(addr string) {
			if err := n.p2pServer.ConnectWithRetry(addr, seedDialRetries); err != nil {
				n.logger.Warn("seed peer unreachable", "peer", addr, "err", err)
			}
		}(peer)
	}

	if n.config.MDNS {
		port, err := strconv.Atoi(n.config.P2PPort)
		if err != nil {
			return fmt.Errorf("p2p port for mdns: %w", err)
		}
		n.discovery = p2p.NewDiscovery(p2p.DiscoveryConfig{
			Instance: n.config.NodeName,
			Port:     port,
			Server:   n.p2pServer,
			Logger:   n.logger,
		})
		if err := n.discovery.Start(); err != nil {
			// The node is fully usable without discovery.
			n.logger.Warn("mdns discovery unavailable", "err", err)
			n.discovery = nil
		}
	}

	return nil
}

// Start runs the whole node. Blocks serving the control surface.
func (n *FullNode) Start() error {
	if err := n.StartP2P(); err != nil {
		return err
	}
	return n.apiServer.Start()
}

// Stop tears down discovery and every peer connection.
func (n *FullNode) Stop() error {
	if n.discovery != nil {
		n.discovery.Stop()
	}
	if n.p2pServer != nil {
		return n.p2pServer.Stop()
	}
	return nil
}

// Store exposes the chain store, mainly for tests.
func (n *FullNode) Store() store.ChainStore {
	return n.store
}

// P2P exposes the peer synchronizer, mainly for tests.
func (n *FullNode) P2P() *p2p.Server {
	return n.p2pServer
}

// API exposes the control surface, mainly for tests.
func (n *FullNode) API() *api.Server {
	return n.apiServer
}

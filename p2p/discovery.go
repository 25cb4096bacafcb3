package p2p

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/grandcat/zeroconf"
)

const (
	mdnsService = "_goledger._tcp"
	mdnsDomain  = "local."
)

// DiscoveryConfig holds configuration for mDNS peer discovery.
type DiscoveryConfig struct {
	Instance string // unique instance name announced on the LAN
	Port     int    // the p2p listen port to advertise
	Server   *Server
	Logger   *slog.Logger
}

// Discovery announces this node over mDNS and connects to sibling nodes it
// finds on the local network. It is an optional convenience layered on top
// of the operator-driven addPeer flow and is disabled by default.
type Discovery struct {
	config DiscoveryConfig
	logger *slog.Logger
	mdns   *zeroconf.Server
	cancel context.CancelFunc
}

// NewDiscovery creates a discovery service bound to a running p2p server.
func NewDiscovery(config DiscoveryConfig) *Discovery {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Discovery{
		config: config,
		logger: logger,
	}
}

// Start registers this node's service record and begins browsing for peers.
func (d *Discovery) Start() error {
	mdns, err := zeroconf.Register(d.config.Instance, mdnsService, mdnsDomain,
		d.config.Port, []string{"ledger"}, nil)
	if err != nil {
		return fmt.Errorf("mdns register: %w", err)
	}
	d.mdns = mdns

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		mdns.Shutdown()
		return fmt.Errorf("mdns resolver: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	entries := make(chan *zeroconf.ServiceEntry)
	go d.handleEntries(entries)
	if err := resolver.Browse(ctx, mdnsService, mdnsDomain, entries); err != nil {
		cancel()
		mdns.Shutdown()
		return fmt.Errorf("mdns browse: %w", err)
	}

	d.logger.Info("mdns discovery started", "instance", d.config.Instance)
	return nil
}

func (d *Discovery) handleEntries(entries <-chan *zeroconf.ServiceEntry) {
	for entry := range entries {
		if entry.Instance == d.config.Instance || len(entry.AddrIPv4) == 0 {
			continue
		}

		addr := net.JoinHostPort(entry.AddrIPv4[0].String(), strconv.Itoa(entry.Port))
		d.logger.Info("discovered peer", "instance", entry.Instance, "addr", addr)
		if err := d.config.Server.Connect(addr); err != nil {
			d.logger.Warn("connect to discovered peer failed", "addr", addr, "err", err)
		}
	}
}

// Stop withdraws the mDNS record and stops browsing. Established peer
// connections are left alone.
func (d *Discovery) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.mdns != nil {
		d.mdns.Shutdown()
	}
}

package config

import (
	"os"
	"strings"
)

// Config is the process configuration, sourced from environment variables.
type Config struct {
	HTTPPort string   // control surface listen port
	P2PPort  string   // peer listen port
	Peers    []string // seed peers dialed at startup
	NodeName string   // tag used in log lines and mDNS announcements
	MDNS     bool     // enable LAN peer discovery
}

const (
	defaultHTTPPort = "3001"
	defaultP2PPort  = "6001"
)

// FromEnv reads HTTP_PORT, P2P_PORT, PEERS (comma-separated), NODE_NAME and
// MDNS, falling back to defaults where unset.
func FromEnv() Config {
	cfg := Config{
		HTTPPort: envOr("HTTP_PORT", defaultHTTPPort),
		P2PPort:  envOr("P2P_PORT", defaultP2PPort),
	}

	if peers := os.Getenv("PEERS"); peers != "" {
		for _, peer := range strings.Split(peers, ",") {
			if peer = strings.TrimSpace(peer); peer != "" {
				cfg.Peers = append(cfg.Peers, peer)
			}
		}
	}

	cfg.NodeName = envOr("NODE_NAME", "ledger-"+cfg.P2PPort)

	switch strings.ToLower(os.Getenv("MDNS")) {
	case "1", "true", "yes", "on":
		cfg.MDNS = true
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

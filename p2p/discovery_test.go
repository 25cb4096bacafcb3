package p2p

import "testing"

func TestNewDiscoveryDefaultsLogger(t *testing.T) {
	d := NewDiscovery(DiscoveryConfig{Instance: "node-a", Port: 6001})
	if d.logger == nil {
		t.Fatal("discovery logger is nil")
	}
}

func TestDiscoveryStopBeforeStartIsSafe(t *testing.T) {
	d := NewDiscovery(DiscoveryConfig{Instance: "node-a", Port: 6001})
	// Must not panic when nothing was ever registered.
	d.Stop()
}

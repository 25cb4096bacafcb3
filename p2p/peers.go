package p2p

import (
	"encoding/json"
	"net"
	"sort"
	"sync"
)

// Peer is one live, bidirectional connection to a remote node.
type Peer struct {
	Address string // remote address:port, the registry key

	conn   net.Conn
	enc    *json.Encoder
	sendMu sync.Mutex // one writer on the wire at a time
}

// Send writes msg to this peer. Safe for concurrent use; broadcasts and
// same-connection replies may interleave.
func (p *Peer) Send(msg *Message) error {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	return p.enc.Encode(msg)
}

// Registry tracks the currently open peer connections. A connection is
// either registered or has been torn down and removed; there is no
// intermediate state.
type Registry struct {
	mu    sync.RWMutex
	peers map[string]*Peer
}

func NewRegistry() *Registry {
	return &Registry{peers: make(map[string]*Peer)}
}

// Add registers conn under its remote address. Re-adding a registered
// address is a no-op and reports false.
func (r *Registry) Add(conn net.Conn) (*Peer, bool) {
	addr := conn.RemoteAddr().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.peers[addr]; ok {
		return nil, false
	}

	peer := &Peer{
		Address: addr,
		conn:    conn,
		enc:     json.NewEncoder(conn),
	}
	r.peers[addr] = peer
	return peer, true
}

// Remove deregisters the peer and closes its connection.
func (r *Registry) Remove(addr string) {
	r.mu.Lock()
	peer, ok := r.peers[addr]
	delete(r.peers, addr)
	r.mu.Unlock()

	if ok {
		peer.conn.Close()
	}
}

// Snapshot returns the peers registered at this instant, so iteration keeps
// working even if a connection closes mid-broadcast.
func (r *Registry) Snapshot() []*Peer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	peers := make([]*Peer, 0, len(r.peers))
	for _, peer := range r.peers {
		peers = append(peers, peer)
	}
	return peers
}

// Addresses lists the registered remote addresses, sorted for stable output.
func (r *Registry) Addresses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addrs := make([]string, 0, len(r.peers))
	for addr := range r.peers {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

func (r *Registry) Has(addr string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.peers[addr]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}

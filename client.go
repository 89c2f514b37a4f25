package siadc09

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/sia-dc09/siadc09d/internal/account"
	"github.com/sia-dc09/siadc09d/internal/counter"
)

// Transport selects which socket type a Client listens on.
type Transport int

const (
	TransportTCP Transport = iota
	TransportUDP
)

// Counts is a read-only snapshot of the pipeline's observability
// counters.
type Counts = counter.Snapshot

// Callback is invoked exactly once per ACK'd SIAEvent, after the
// response has already been flushed to the peer. A panicking callback
// must not affect the already-sent acknowledgement; Client recovers
// from callback panics itself and counts them under user_code.
type Callback func(SIAEvent)

// Config configures a Client at construction time.
type Config struct {
	BindAddress string
	Transport   Transport
	Accounts    []Account
	Callback    Callback
	// MaxProcs is the GOMAXPROCS value that stands in for a
	// single-threaded-cooperative scheduling mode (see DESIGN.md).
	// Client does not apply it itself; cmd/siadc09d applies it via
	// runtime.GOMAXPROCS before starting the client.
	MaxProcs int
}

// Client is the public facade: construct with New, Start to bind and
// begin serving, Stop to shut down gracefully. Accounts may be swapped
// at runtime with SetAccounts; Counts returns a live snapshot.
type Client struct {
	cfg      Config
	registry *account.Registry
	counters *counter.Counters

	mu       sync.Mutex
	listener net.Listener
	conn     net.PacketConn
	wg       sync.WaitGroup
	closing  chan struct{}
	started  bool
}

// New constructs a Client. It does not re-validate cfg.Accounts:
// accounts are validated by NewAccount at configuration time, and New
// itself never fails.
func New(cfg Config) (*Client, error) {
	return &Client{
		cfg:      cfg,
		registry: account.NewRegistry(cfg.Accounts...),
		counters: &counter.Counters{},
		closing:  make(chan struct{}),
	}, nil
}

// Start binds the configured transport and begins serving in background
// goroutines. It returns once the listener/socket is bound.
func (c *Client) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return fmt.Errorf("siadc09: client already started")
	}

	switch c.cfg.Transport {
	case TransportUDP:
		addr, err := net.ResolveUDPAddr("udp", c.cfg.BindAddress)
		if err != nil {
			return fmt.Errorf("resolve udp bind address: %w", err)
		}
		conn, err := net.ListenUDP("udp", addr)
		if err != nil {
			return fmt.Errorf("listen udp: %w", err)
		}
		c.conn = conn
		c.wg.Add(1)
		go c.serveUDP(conn)
	default:
		ln, err := net.Listen("tcp", c.cfg.BindAddress)
		if err != nil {
			return fmt.Errorf("listen tcp: %w", err)
		}
		c.listener = ln
		c.wg.Add(1)
		go c.serveTCP(ln)
	}

	c.started = true
	return nil
}

// Stop signals shutdown, closes the listening socket, and blocks until
// every in-flight worker has finished its current frame and exited.
func (c *Client) Stop() {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return
	}
	select {
	case <-c.closing:
		// already stopped
		c.mu.Unlock()
		return
	default:
	}
	close(c.closing)
	if c.listener != nil {
		c.listener.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.mu.Unlock()

	c.wg.Wait()
}

// SetAccounts atomically replaces the account set. In-flight frames see
// either the entire old set or the entire new set, never a mix.
func (c *Client) SetAccounts(accounts []Account) {
	c.registry.Replace(accounts)
}

// Accounts returns the currently active account set.
func (c *Client) Accounts() map[string]Account {
	return c.registry.Snapshot()
}

// Counts returns a point-in-time snapshot of the pipeline counters.
func (c *Client) Counts() Counts {
	return c.counters.Snapshot()
}

// dispatch invokes the configured callback for dispatchable events,
// isolating the pipeline from a panicking or misbehaving callback.
func (c *Client) dispatch(evt Event) {
	sia, ok := evt.(SIAEvent)
	if !ok || !sia.IsDispatchable() || c.cfg.Callback == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.counters.IncUserCode()
		}
	}()
	c.cfg.Callback(sia)
}

func (c *Client) now() time.Time { return time.Now() }

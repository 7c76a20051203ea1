package mstore

import (
	"context"
	"net"
	"os"
	"sync/atomic"
	"syscall"

	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/puzpuzpuz/xsync/v3"
)

// keySpace is the state shared by all connections created from the same NewMemoryConn call
type keySpace struct {
	data    *xsync.MapOf[string, string]
	offline atomic.Bool
}

// Conn is an in-memory implementation of store.IConn.
// Several Conn values created with Share operate on the same key space.
type Conn struct {
	*keySpace
	closed atomic.Bool
}

// NewMemoryConn creates a connection to a fresh, empty key space
func NewMemoryConn() *Conn {
	return &Conn{
		keySpace: &keySpace{data: xsync.NewMapOf[string, string]()},
	}
}

// Factory returns a store.ConnFactory whose connections all share the key space of c
func (c *Conn) Factory() store.ConnFactory {
	return func(_ common.ClientConfig) (store.IConn, error) {
		return c.Share(), nil
	}
}

// Share returns a new connection operating on the same key space as c
func (c *Conn) Share() *Conn {
	return &Conn{keySpace: c.keySpace}
}

// SetOffline makes every following call on the key space fail with a connection refused error until reset
func (c *Conn) SetOffline(offline bool) {
	c.offline.Store(offline)
}

// Len returns the number of stored keys
func (c *Conn) Len() int {
	return c.data.Size()
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store.IConn)
// --------------------------------------------------------------------------

func (c *Conn) Ping(_ context.Context) error {
	return c.check("ping")
}

func (c *Conn) Get(_ context.Context, key string) (string, bool, error) {
	if err := c.check("get"); err != nil {
		return "", false, err
	}
	val, ok := c.data.Load(key)
	return val, ok, nil
}

func (c *Conn) Set(_ context.Context, key, value string) error {
	if err := c.check("set"); err != nil {
		return err
	}
	c.data.Store(key, value)
	return nil
}

func (c *Conn) Delete(_ context.Context, key string) (int64, error) {
	if err := c.check("del"); err != nil {
		return 0, err
	}
	if _, loaded := c.data.LoadAndDelete(key); loaded {
		return 1, nil
	}
	return 0, nil
}

func (c *Conn) Close() error {
	c.closed.Store(true)
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// check returns the error a real socket would produce in the current state
func (c *Conn) check(op string) error {
	if c.closed.Load() {
		return &net.OpError{Op: op, Net: "mem", Err: net.ErrClosed}
	}
	if c.offline.Load() {
		return &net.OpError{Op: op, Net: "mem", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	}
	return nil
}

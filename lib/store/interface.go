package store

import (
	"context"
	"errors"

	"github.com/ValentinKolb/kvprobe/lib/common"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Document is a JSON document stored under a single key.
// Values must be JSON-serializable (strings, numbers, bools, nil, nested maps and slices).
type Document map[string]any

// ConnFactory is a function type that creates a new connection handle from a configuration.
// No network activity must happen in the factory; connections are established lazily.
type ConnFactory func(config common.ClientConfig) (IConn, error)

// IConn is the capability interface of a connection to a remote key-value store.
// Values are raw strings, encoding is done by the caller.
type IConn interface {
	// Ping performs a round-trip to verify the connection without touching any data.
	Ping(ctx context.Context) (err error)
	// Get returns the value for a key. The boolean return value indicates whether the key exists.
	Get(ctx context.Context, key string) (value string, loaded bool, err error)
	// Set inserts or replaces the value for a key. The value never expires.
	Set(ctx context.Context, key, value string) (err error)
	// Delete removes a key and returns the number of keys actually removed.
	Delete(ctx context.Context, key string) (removed int64, err error)
	// Close releases the connection. Calls after Close fail.
	Close() (err error)
}

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

var (
	// ErrNotConnected is returned when an operation is used before a successful connect
	ErrNotConnected = errors.New("not connected, call Connect() first")
	// ErrNoHost is returned by factories when no store host is configured
	ErrNoHost = errors.New("no store host configured (set STORE_HOST)")
)

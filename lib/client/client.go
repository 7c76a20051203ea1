package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/ValentinKolb/kvprobe/lib/serializer"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/ValentinKolb/kvprobe/lib/store/rstore"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	Logger = logger.GetLogger(common.LoggerClient)
)

// Defaults of the connect loop
const (
	DefaultMaxRetries = common.DefaultMaxRetries
	DefaultRetryDelay = common.DefaultRetryDelay
)

// StoreClient upserts, reads and deletes JSON documents in a remote key-value store.
// It owns its connection handle exclusively and is not safe for concurrent use.
type StoreClient struct {
	config     common.ClientConfig
	factory    store.ConnFactory
	conn       store.IConn
	serializer serializer.IDocSerializer
	log        logger.ILogger
	connected  bool
	failFast   bool
}

// NewStoreClient creates a client from connection parameters.
// Fields left unset in config are taken from the environment (STORE_HOST, STORE_PORT, STORE_PASSWORD, ...).
// A nil factory selects the Redis connection, a nil log the package Logger.
// No network activity happens until Connect is called.
func NewStoreClient(config common.ClientConfig, factory store.ConnFactory, log logger.ILogger) *StoreClient {
	if factory == nil {
		factory = rstore.NewRedisConn
	}
	if log == nil {
		log = Logger
	}

	resolved := common.ClientConfigFromEnv().Override(config)
	log.Infof("Initializing with config for: %s", resolved.Addr())

	return &StoreClient{
		config:     resolved,
		factory:    factory,
		serializer: serializer.NewJSONSerializer(),
		log:        log,
	}
}

// NewStoreClientWithConn creates a client around a pre-built connection handle.
// Connect must still be called; it only probes the handle.
func NewStoreClientWithConn(conn store.IConn, log logger.ILogger) *StoreClient {
	if log == nil {
		log = Logger
	}
	return &StoreClient{
		conn:       conn,
		serializer: serializer.NewJSONSerializer(),
		log:        log,
	}
}

// Config returns the resolved configuration of the client
func (c *StoreClient) Config() common.ClientConfig {
	return c.config
}

// IsConnected reports whether the last Connect succeeded
func (c *StoreClient) IsConnected() bool {
	return c.connected
}

// SetFailFast makes Connect give up at once on errors that are not connection errors
// (see IsConnectionError), e.g. a wrong password or a missing host. Off by default.
func (c *StoreClient) SetFailFast(failFast bool) {
	c.failFast = failFast
}

// --------------------------------------------------------------------------
// Connection handling
// --------------------------------------------------------------------------

// Connect creates the connection handle if needed and probes it with a ping.
// Every failure is retried up to maxRetries attempts in total with a fixed retryDelay in between.
// The loop stops early only if ctx is done, or with SetFailFast on a non-connection error.
// Calling Connect on a live client just probes again.
func (c *StoreClient) Connect(ctx context.Context, maxRetries int, retryDelay time.Duration) bool {
	if maxRetries < 1 {
		maxRetries = 1
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := c.probe(ctx)
		if err == nil {
			c.connected = true
			c.log.Infof("Successfully connected to the store")
			return true
		}
		c.connected = false

		if ctx.Err() != nil {
			c.log.Errorf("Connect aborted: %v", ctx.Err())
			return false
		}

		if c.failFast && !IsConnectionError(err) {
			c.log.Errorf("Failed to connect to the store: %v", err)
			return false
		}

		if attempt == maxRetries {
			c.log.Errorf("Failed to connect to the store after %d attempts: %v", maxRetries, err)
			return false
		}

		c.log.Warningf("Connection attempt %d/%d failed: %v. Retrying in %s...", attempt, maxRetries, err, retryDelay)
		if err := sleep(ctx, retryDelay); err != nil {
			c.log.Errorf("Connect aborted: %v", err)
			return false
		}
	}
	return false
}

// Close releases the connection handle. The client must be connected again before further use.
func (c *StoreClient) Close() error {
	c.connected = false
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// probe ensures a handle exists and pings it
func (c *StoreClient) probe(ctx context.Context) error {
	if c.conn == nil {
		if c.factory == nil {
			return store.ErrNotConnected
		}
		conn, err := c.factory(c.config)
		if err != nil {
			return err
		}
		c.conn = conn
	}
	return c.conn.Ping(ctx)
}

// --------------------------------------------------------------------------
// CRUD operations
// --------------------------------------------------------------------------

// Insert stores doc under key, replacing any previous document as a whole.
// It returns false if the client is not connected or the write failed; failures are logged.
func (c *StoreClient) Insert(ctx context.Context, key string, doc store.Document) bool {
	if !c.ready() {
		return false
	}

	value, err := c.serializer.Serialize(doc)
	if err != nil {
		c.log.Errorf("Error during insert of key %s: %v", key, err)
		return false
	}

	if err := c.conn.Set(ctx, key, value); err != nil {
		c.log.Errorf("Error during insert of key %s: %v", key, err)
		return false
	}

	c.log.Infof("Successfully inserted/updated key: %s", key)
	return true
}

// Update is Insert under another name; the store's set already creates or replaces.
func (c *StoreClient) Update(ctx context.Context, key string, doc store.Document) bool {
	c.log.Infof("Updating key '%s' (same as insert)...", key)
	return c.Insert(ctx, key, doc)
}

// Search returns the document stored under key.
// The boolean is false if the key does not exist, the client is not connected or the read failed.
// Use Lookup to tell these cases apart.
func (c *StoreClient) Search(ctx context.Context, key string) (store.Document, bool) {
	res := c.Lookup(ctx, key)
	return res.Doc, res.Status == StatusFound
}

// Lookup reads the document stored under key and reports whether it was found, missing, or the read failed.
// An empty stored value counts as missing.
func (c *StoreClient) Lookup(ctx context.Context, key string) Result {
	if !c.ready() {
		return failed(store.ErrNotConnected)
	}

	value, ok, err := c.conn.Get(ctx, key)
	if err != nil {
		c.log.Errorf("Error during search of key %s: %v", key, err)
		return failed(err)
	}
	if !ok || value == "" {
		c.log.Infof("Key not found: %s", key)
		return Result{Status: StatusNotFound}
	}

	var doc store.Document
	if err := c.serializer.Deserialize(value, &doc); err != nil {
		c.log.Errorf("Error during search of key %s: %v", key, err)
		return failed(fmt.Errorf("decode value of %s: %w", key, err))
	}

	c.log.Infof("Found key: %s", key)
	return Result{Status: StatusFound, Doc: doc}
}

// Delete removes key. It returns true only if a key was actually removed;
// a missing key, a disconnected client and a failed call all return false.
func (c *StoreClient) Delete(ctx context.Context, key string) bool {
	removed, _ := c.Remove(ctx, key)
	return removed
}

// Remove removes key and reports whether it existed.
// The error is store.ErrNotConnected or the transport error; a missing key is not an error.
func (c *StoreClient) Remove(ctx context.Context, key string) (bool, error) {
	if !c.ready() {
		return false, store.ErrNotConnected
	}

	n, err := c.conn.Delete(ctx, key)
	if err != nil {
		c.log.Errorf("Error during delete of key %s: %v", key, err)
		return false, err
	}
	if n == 0 {
		c.log.Infof("Key not found to delete: %s", key)
		return false, nil
	}

	c.log.Infof("Successfully deleted key: %s", key)
	return true, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// ready checks for a live connection and warns if there is none
func (c *StoreClient) ready() bool {
	if !c.connected || c.conn == nil {
		c.log.Warningf("Not connected. Call Connect() first.")
		return false
	}
	return true
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// errorsIsAny reports whether err matches one of targets
func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

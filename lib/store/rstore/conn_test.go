package rstore

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/alicebob/miniredis/v2"
)

func newConn(t *testing.T, s *miniredis.Miniredis) store.IConn {
	t.Helper()
	port, _ := strconv.Atoi(s.Port())
	conn, err := NewRedisConn(common.ClientConfig{Host: s.Host(), Port: port, DialTimeout: time.Second, OpTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewRedisConn() failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestNewRedisConnNoHost(t *testing.T) {
	if _, err := NewRedisConn(common.ClientConfig{Port: 6379}); !errors.Is(err, store.ErrNoHost) {
		t.Errorf("NewRedisConn() error = %v, want %v", err, store.ErrNoHost)
	}
}

// TestRedisConn tests all operations against a Redis-protocol server
func TestRedisConn(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	conn := newConn(t, s)

	if err := conn.Ping(ctx); err != nil {
		t.Fatalf("Ping() failed: %v", err)
	}

	if _, ok, err := conn.Get(ctx, "k"); ok || err != nil {
		t.Errorf("Get() of missing key = (%v, %v), want (false, nil)", ok, err)
	}

	if err := conn.Set(ctx, "k", `{"a":1}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if got, _ := s.Get("k"); got != `{"a":1}` {
		t.Errorf("server holds %q", got)
	}
	if ttl := s.TTL("k"); ttl != 0 {
		t.Errorf("values must not expire, TTL = %s", ttl)
	}

	if v, ok, err := conn.Get(ctx, "k"); !ok || err != nil || v != `{"a":1}` {
		t.Errorf("Get() = (%q, %v, %v)", v, ok, err)
	}

	if n, err := conn.Delete(ctx, "k"); n != 1 || err != nil {
		t.Errorf("Delete() = (%d, %v), want (1, nil)", n, err)
	}
	if n, err := conn.Delete(ctx, "k"); n != 0 || err != nil {
		t.Errorf("Delete() of missing key = (%d, %v), want (0, nil)", n, err)
	}
	if s.Exists("k") {
		t.Error("key should be gone from the server")
	}
}

// TestRedisConnServerError tests that server errors are passed through
func TestRedisConnServerError(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	conn := newConn(t, s)
	if err := conn.Ping(ctx); err != nil {
		t.Fatal(err)
	}

	s.SetError("LOADING dataset in memory")
	defer s.SetError("")
	if _, _, err := conn.Get(ctx, "k"); err == nil {
		t.Error("Get() should return the server error")
	}
}

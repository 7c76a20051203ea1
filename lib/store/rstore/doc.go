// Package rstore implements store.IConn on top of go-redis.
//
// The connection is created with a single pooled socket, driver-level retries
// disabled and the dial, read and write timeouts taken from the
// common.ClientConfig (5 seconds each by default). A missing host is rejected
// with store.ErrNoHost instead of silently dialing localhost.
//
// Usage Example:
//
//	conn, err := rstore.NewRedisConn(common.ClientConfig{Host: "localhost", Port: 6379})
//	if err != nil {
//	  return err
//	}
//	defer conn.Close()
//	err = conn.Ping(ctx)
package rstore

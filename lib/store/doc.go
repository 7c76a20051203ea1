// Package store defines the capability interface kvprobe uses to talk to a
// remote key-value store, together with the Document type and the sentinel
// errors shared by all implementations.
//
// Key Components:
//
//   - IConn: Ping, Get, Set, Delete and Close over a string value space.
//     Production and test implementations satisfy the same interface, so the
//     client never depends on a concrete driver.
//
//   - ConnFactory: Creates an IConn from a common.ClientConfig without doing
//     any network activity.
//
// Implementations:
//
//   - Redis Store (rstore): go-redis backed connection with bounded dial and
//     operation timeouts. Available in "github.com/ValentinKolb/kvprobe/lib/store/rstore".
//
//   - Memory Store (mstore): process-local key space for tests and dry runs.
//     Available in "github.com/ValentinKolb/kvprobe/lib/store/mstore".
package store

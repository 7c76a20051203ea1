// Package mstore provides an in-memory store.IConn backed by an xsync map.
// It is used by tests and by `kvprobe run --memory` to exercise the client
// without a server. SetOffline simulates an unreachable server: calls then
// fail with the same *net.OpError shape a refused socket produces.
package mstore

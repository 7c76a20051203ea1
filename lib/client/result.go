package client

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/ValentinKolb/kvprobe/lib/store"
)

// Status is the outcome of a Lookup
type Status int

const (
	StatusFound    Status = iota // 0: The key exists and its value decoded.
	StatusNotFound               // 1: The key does not exist.
	StatusFailed                 // 2: The read failed, see Result.Err.
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a Lookup. Doc is only set for StatusFound, Err only for StatusFailed.
type Result struct {
	Status Status
	Doc    store.Document
	Err    error
}

func failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// IsConnectionError reports whether err means the store could not be reached
// (as opposed to the store answering with an error). With SetFailFast only these errors are retried by Connect.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errorsIsAny(err, io.EOF, io.ErrUnexpectedEOF, net.ErrClosed, context.DeadlineExceeded,
		syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ECONNABORTED, syscall.EHOSTUNREACH, syscall.ENETUNREACH) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

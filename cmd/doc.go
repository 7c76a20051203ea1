// Package cmd implements the command-line interface of kvprobe. It provides
// a small command tree for exercising a key-value store with JSON documents.
//
// The package is organized into several subpackages:
//
//   - run: The demonstration workflow (insert, search, update, delete) with an operation summary
//   - kv: Single store operations (ping, set, get, del) for manual probing
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set through the environment with the STORE_ prefix,
// e.g. STORE_HOST or STORE_RETRY_DELAY. The files .env and .env.local are loaded
// if present. See kvprobe -help for a list of all commands.
package cmd

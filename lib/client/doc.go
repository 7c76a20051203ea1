// Package client implements StoreClient, a small wrapper that stores JSON
// documents in a remote key-value store.
//
// The package focuses on:
//   - Connecting with a bounded number of attempts and a fixed delay between them
//   - Upsert, point lookup and delete of whole documents under string keys
//   - Converting every failure into a safe return value instead of an error
//
// Key Components:
//
//   - NewStoreClient: Creates a client from connection parameters. Unset fields
//     fall back to the STORE_* environment, the connection itself is opened
//     lazily by Connect through a store.ConnFactory.
//
//   - NewStoreClientWithConn: Wraps an existing store.IConn, e.g. an in-memory
//     connection from the mstore package in tests.
//
//   - Lookup / Remove: Variants of Search and Delete that keep "not found"
//     and "failed" apart.
//
// Usage Example:
//
//	c := client.NewStoreClient(common.ClientConfig{Host: "localhost"}, nil, nil)
//	if !c.Connect(ctx, client.DefaultMaxRetries, client.DefaultRetryDelay) {
//	  return
//	}
//	defer c.Close()
//
//	c.Insert(ctx, "APP_CONFIG", store.Document{"app_name": "demo"})
//	doc, ok := c.Search(ctx, "APP_CONFIG")
//
// Thread Safety:
//
//	A StoreClient is meant to be used from a single goroutine.
package client

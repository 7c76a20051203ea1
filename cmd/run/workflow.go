package run

import (
	"context"
	"errors"
	"time"

	"github.com/ValentinKolb/kvprobe/lib/client"
	"github.com/ValentinKolb/kvprobe/lib/stats"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/google/go-cmp/cmp"
	"github.com/lni/dragonboat/v4/logger"
)

// ErrConnectFailed is returned by Run when the initial connect gives up
var ErrConnectFailed = errors.New("could not connect to the store")

// Workflow runs the fixed demonstration sequence against a single key:
// insert, search, update, search, delete, search, insert, search.
type Workflow struct {
	Client  *client.StoreClient
	Counter *stats.OperationCounter
	Log     logger.ILogger

	Key         string
	Document    store.Document
	UpdateField string
	UpdateValue any

	MaxRetries int
	RetryDelay time.Duration
}

// Report collects the outcome of every step of a Run
type Report struct {
	Inserted       bool
	Verified       bool
	Updated        bool
	UpdateVisible  bool
	Deleted        bool
	GoneAfterDel   bool
	Reinserted     bool
	ReinsertedSeen bool
}

// Run executes the workflow. It only returns an error if the initial connect fails;
// failures of single steps are logged and reflected in the Report.
func (w *Workflow) Run(ctx context.Context) (Report, error) {
	var report Report

	if w.Log == nil {
		w.Log = Logger
	}

	if !w.Client.Connect(ctx, w.MaxRetries, w.RetryDelay) {
		w.Log.Errorf("Aborting: %v", ErrConnectFailed)
		return report, ErrConnectFailed
	}

	// 1. insert
	w.Log.Infof("--- Inserting document under '%s' ---", w.Key)
	report.Inserted = w.insert(ctx, stats.OpInsert, w.Document)

	// 2. search and verify
	w.Log.Infof("--- Searching '%s' ---", w.Key)
	if res := w.lookup(ctx); res.Status == client.StatusFound {
		if diff := cmp.Diff(w.Document, res.Doc); diff != "" {
			w.Log.Warningf("Retrieved document differs from the inserted one (-inserted +retrieved):\n%s", diff)
		} else {
			report.Verified = true
			w.Log.Infof("Retrieved document matches the inserted one")
		}
	}

	// 3. update one field
	updated := w.updatedDocument()
	w.Log.Infof("--- Updating '%s' (%s = %v) ---", w.Key, w.UpdateField, w.UpdateValue)
	report.Updated = w.insert(ctx, stats.OpUpdate, updated)

	// 4. search to confirm the update
	if res := w.lookup(ctx); res.Status == client.StatusFound {
		report.UpdateVisible = cmp.Equal(updated, res.Doc)
		w.Log.Infof("Field '%s' is now: %v", w.UpdateField, res.Doc[w.UpdateField])
	}

	// 5. delete
	w.Log.Infof("--- Deleting '%s' ---", w.Key)
	start := time.Now()
	report.Deleted = w.Client.Delete(ctx, w.Key)
	w.Counter.RecordOperationTimed(stats.OpDelete, time.Since(start))

	// 6. search to confirm the deletion
	switch res := w.lookup(ctx); res.Status {
	case client.StatusNotFound:
		report.GoneAfterDel = true
		w.Log.Infof("Key '%s' is gone", w.Key)
	case client.StatusFound:
		w.Log.Warningf("Key '%s' still exists after delete", w.Key)
	}

	// 7. re-insert the original document
	w.Log.Infof("--- Re-inserting '%s' ---", w.Key)
	report.Reinserted = w.insert(ctx, stats.OpInsert, w.Document)

	// 8. search to confirm the re-insert
	report.ReinsertedSeen = w.lookup(ctx).Status == client.StatusFound

	w.Counter.PrintSummary()
	return report, nil
}

// insert writes doc under the workflow key and records it as category
func (w *Workflow) insert(ctx context.Context, category string, doc store.Document) bool {
	start := time.Now()
	var ok bool
	if category == stats.OpUpdate {
		ok = w.Client.Update(ctx, w.Key, doc)
	} else {
		ok = w.Client.Insert(ctx, w.Key, doc)
	}
	w.Counter.RecordOperationTimed(category, time.Since(start))
	return ok
}

// lookup reads the workflow key and records a search
func (w *Workflow) lookup(ctx context.Context) client.Result {
	start := time.Now()
	res := w.Client.Lookup(ctx, w.Key)
	w.Counter.RecordOperationTimed(stats.OpSearch, time.Since(start))
	return res
}

// updatedDocument returns a shallow copy of the document with the update field set
func (w *Workflow) updatedDocument() store.Document {
	updated := make(store.Document, len(w.Document)+1)
	for k, v := range w.Document {
		updated[k] = v
	}
	updated[w.UpdateField] = w.UpdateValue
	return updated
}

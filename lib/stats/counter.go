package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/lni/dragonboat/v4/logger"
	gometrics "github.com/rcrowley/go-metrics"
)

var (
	Logger = logger.GetLogger(common.LoggerStats)
)

// Operation categories tracked by the OperationCounter
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpSearch = "search"
	OpDelete = "delete"
)

// Categories lists all recognized categories in reporting order
var Categories = []string{OpInsert, OpUpdate, OpSearch, OpDelete}

// OperationCounter tallies the operations of one run by category.
// Counts only ever grow. Latencies are tracked for operations recorded with RecordOperationTimed.
type OperationCounter struct {
	start    time.Time
	set      *metrics.Set
	counters map[string]*metrics.Counter
	timers   gometrics.Registry
	log      logger.ILogger
}

// NewOperationCounter creates a counter with all categories at zero and the start time set to now.
// A nil log selects the package Logger.
func NewOperationCounter(log logger.ILogger) *OperationCounter {
	if log == nil {
		log = Logger
	}

	set := metrics.NewSet()
	counters := make(map[string]*metrics.Counter, len(Categories))
	for _, op := range Categories {
		counters[op] = set.NewCounter(fmt.Sprintf(`kvprobe_operations_total{op=%q}`, op))
	}

	return &OperationCounter{
		start:    time.Now(),
		set:      set,
		counters: counters,
		timers:   gometrics.NewRegistry(),
		log:      log,
	}
}

// RecordOperation increments the count of category. Unknown categories are ignored.
func (s *OperationCounter) RecordOperation(category string) {
	counter, ok := s.counters[category]
	if !ok {
		return
	}
	counter.Inc()
	s.log.Debugf("Recorded %s operation", category)
}

// RecordOperationTimed increments the count of category and adds took to its latency timer.
// Unknown categories are ignored.
func (s *OperationCounter) RecordOperationTimed(category string, took time.Duration) {
	if _, ok := s.counters[category]; !ok {
		return
	}
	s.RecordOperation(category)
	gometrics.GetOrRegisterTimer(category, s.timers).Update(took)
}

// GetStatistics returns a snapshot of the counts per category
func (s *OperationCounter) GetStatistics() map[string]uint64 {
	snapshot := make(map[string]uint64, len(s.counters))
	for op, counter := range s.counters {
		snapshot[op] = counter.Get()
	}
	return snapshot
}

// GetTotalOperations returns the sum of all category counts
func (s *OperationCounter) GetTotalOperations() uint64 {
	var total uint64
	for _, counter := range s.counters {
		total += counter.Get()
	}
	return total
}

// Runtime returns the wall-clock time since the counter was created
func (s *OperationCounter) Runtime() time.Duration {
	return time.Since(s.start)
}

// MeanLatency returns the mean latency of the timed operations of category, or 0 if there are none
func (s *OperationCounter) MeanLatency(category string) time.Duration {
	timer, ok := s.timers.Get(category).(gometrics.Timer)
	if !ok || timer.Count() == 0 {
		return 0
	}
	return time.Duration(timer.Mean())
}

// PrintSummary logs the runtime, the total and the per-category counts
func (s *OperationCounter) PrintSummary() {
	s.log.Infof("=== Store Operations Summary ===")
	for _, line := range s.summaryLines() {
		s.log.Infof("%s", line)
	}
	s.log.Infof("================================")
}

// String returns the same summary as PrintSummary as a block of text
func (s *OperationCounter) String() string {
	var sb strings.Builder
	sb.WriteString("\nSTORE OPERATIONS\n")
	for _, line := range s.summaryLines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WritePrometheus writes the counters in Prometheus text exposition format to w
func (s *OperationCounter) WritePrometheus(w io.Writer) {
	s.set.WritePrometheus(w)
}

func (s *OperationCounter) summaryLines() []string {
	lines := []string{
		fmt.Sprintf("  %-22s: %.2f seconds", "Runtime", s.Runtime().Seconds()),
		fmt.Sprintf("  %-22s: %d", "Total operations", s.GetTotalOperations()),
	}
	for _, op := range Categories {
		line := fmt.Sprintf("  %-22s: %d", op, s.counters[op].Get())
		if mean := s.MeanLatency(op); mean > 0 {
			line += fmt.Sprintf(" (avg %s)", mean)
		}
		lines = append(lines, line)
	}
	return lines
}

// Package stats provides the OperationCounter, a process-local tally of the
// store operations performed during one run.
//
// Counts are kept per category (insert, update, search, delete) in
// VictoriaMetrics counters, so they can be exported with WritePrometheus.
// Latencies passed to RecordOperationTimed go into go-metrics timers and
// show up as averages in the summary.
package stats

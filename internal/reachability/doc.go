// Package reachability probes every track URL in a manifest over HTTP.
//
// Checks fan out with one goroutine per URL so a slow or unreachable host
// never stalls the others, and join before the report is produced. Per-URL
// failures (non-2xx status, transport errors, timeouts) are collected in the
// report; only a failure of the run itself aborts with an error.
package reachability

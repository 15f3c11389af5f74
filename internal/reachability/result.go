package reachability

import (
	"time"

	"github.com/barafael/trackinator/internal/manifest"
)

// Target is one URL to probe, labeled with its track name.
type Target struct {
	Name string
	URL  string
}

// Targets derives the ordered check input from a manifest. Duplicate URLs are
// kept; each track is probed independently.
func Targets(m *manifest.Manifest) []Target {
	targets := make([]Target, 0, len(m.Songs))
	for _, song := range m.Songs {
		targets = append(targets, Target{Name: song.Name, URL: m.TrackURL(song)})
	}
	return targets
}

// Outcome classifies a single probe. Status is the HTTP status code when a
// response arrived; Reason is set for every failure (non-2xx status,
// transport error, or timeout).
type Outcome struct {
	OK      bool
	Status  int
	Reason  string
	Latency time.Duration
}

// Result pairs a target with its probe outcome.
type Result struct {
	Target  Target
	Outcome Outcome
}

// Report aggregates the results of one check run, in input order.
type Report struct {
	Results []Result
}

// Failed returns the results whose probe did not succeed, in input order.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, result := range r.Results {
		if !result.Outcome.OK {
			failed = append(failed, result)
		}
	}
	return failed
}

// AllReachable reports the aggregate verdict: true iff no probe failed.
func (r *Report) AllReachable() bool {
	return len(r.Failed()) == 0
}

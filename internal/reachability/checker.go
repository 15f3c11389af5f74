package reachability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/barafael/trackinator/internal/config"
)

// Checker probes track URLs over HTTP. Each probe is a single GET with
// redirects followed; any 2xx response counts as reachable. No retries.
type Checker struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// New builds a checker from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Checker {
	timeout := time.Duration(cfg.Check.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		client:    &http.Client{},
		timeout:   timeout,
		userAgent: cfg.Check.UserAgent,
		logger:    logger,
	}
}

// WithClient overrides the HTTP client. Used by tests.
func (c *Checker) WithClient(client *http.Client) *Checker {
	c.client = client
	return c
}

// Run checks every target concurrently and waits for all probes to finish
// before returning. Results keep input order regardless of completion order.
// An empty target list yields an immediate all-pass report.
//
// A non-nil error means the run itself could not proceed (the surrounding
// context was canceled); it is distinct from any per-target failure, which is
// recorded in the report instead.
func (c *Checker) Run(ctx context.Context, targets []Target) (*Report, error) {
	report := &Report{Results: make([]Result, len(targets))}
	if len(targets) == 0 {
		return report, nil
	}

	g, runCtx := errgroup.WithContext(ctx)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			outcome, err := c.probe(runCtx, target)
			if err != nil {
				return err
			}
			report.Results[i] = Result{Target: target, Outcome: outcome}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run reachability checks: %w", err)
	}
	return report, nil
}

// probe issues one GET against the target URL. The returned error is non-nil
// only when the run context was canceled; every HTTP-level failure is folded
// into the outcome.
func (c *Checker) probe(ctx context.Context, target Target) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	c.logger.Debug("checking track", "name", target.Name, "url", target.URL)

	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, target.URL, nil)
	if err != nil {
		return Outcome{Reason: fmt.Sprintf("invalid url (%v)", err)}, nil
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Outcome{}, ctx.Err()
		}
		return Outcome{Reason: summarizeProbeError(err), Latency: time.Since(started)}, nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	outcome := Outcome{Status: resp.StatusCode, Latency: time.Since(started)}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		outcome.OK = true
	} else {
		outcome.Reason = fmt.Sprintf("status %s", resp.Status)
	}
	return outcome, nil
}

// summarizeProbeError produces a human-readable reason for a failed request.
func summarizeProbeError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return err.Error()
}

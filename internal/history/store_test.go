package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/barafael/trackinator/internal/reachability"
)

func sampleReport() *reachability.Report {
	return &reachability.Report{
		Results: []reachability.Result{
			{
				Target:  reachability.Target{Name: "good", URL: "http://host/good.mp3"},
				Outcome: reachability.Outcome{OK: true, Status: 200, Latency: 12 * time.Millisecond},
			},
			{
				Target:  reachability.Target{Name: "bad", URL: "http://host/bad.mp3"},
				Outcome: reachability.Outcome{Status: 404, Reason: "status 404 Not Found"},
			},
		},
	}
}

func TestRecordAndListRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	started := time.Now().Add(-time.Minute)
	id, err := store.RecordRun(ctx, started, 1500*time.Millisecond, sampleReport())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatal("run id must not be empty")
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Total != 2 || run.Failed != 1 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.Duration != 1500*time.Millisecond {
		t.Fatalf("unexpected duration: %v", run.Duration)
	}
	if !run.StartedAt.Equal(started) {
		t.Fatalf("unexpected start time: %v vs %v", run.StartedAt, started)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	old, err := store.RecordRun(ctx, time.Now().Add(-time.Hour), time.Second, sampleReport())
	if err != nil {
		t.Fatalf("record old: %v", err)
	}
	recent, err := store.RecordRun(ctx, time.Now(), time.Second, sampleReport())
	if err != nil {
		t.Fatalf("record recent: %v", err)
	}

	runs, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != recent {
		t.Fatalf("expected only the most recent run %s, got %+v (old %s)", recent, runs, old)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.RecordRun(context.Background(), time.Now(), time.Second, sampleReport()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.ListRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected the recorded run to survive reopen, got %d", len(runs))
	}
}

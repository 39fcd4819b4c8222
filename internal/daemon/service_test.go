package daemon

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/stash/internal/model"
	"github.com/theirongolddev/stash/internal/store"
)

func TestCheckOnceRollsOverStaleDocument(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stash.db")

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	p := model.NewPlan("trip", "2024-01-01")
	p.DayActive = true
	p.DailyAllowance = 100
	p.DailySpent = 30
	doc := &model.Document{
		Plans:         []*model.Plan{p},
		LastLoginDate: "2000-01-01", // long before any real today
	}
	if err := st.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = st.Close()

	svc := New(Config{DBPath: dbPath, Location: time.UTC, Interval: time.Minute})
	svc.checkOnce()

	status := svc.snapshotStatus()
	if status.LastError != "" {
		t.Fatalf("check error: %s", status.LastError)
	}
	if status.RolloverCount != 1 {
		t.Fatalf("RolloverCount = %d, want 1", status.RolloverCount)
	}
	if status.Summary.TotalSavings != 70 {
		t.Fatalf("TotalSavings = %.2f, want 70", status.Summary.TotalSavings)
	}
	if status.Summary.OpenDays != 0 {
		t.Fatalf("OpenDays = %d, want 0 after close", status.Summary.OpenDays)
	}

	// Second check on the same day is a no-op.
	svc.checkOnce()
	status = svc.snapshotStatus()
	if status.RolloverCount != 1 {
		t.Fatalf("RolloverCount after second check = %d, want still 1", status.RolloverCount)
	}
	if status.CheckCount != 2 {
		t.Fatalf("CheckCount = %d, want 2", status.CheckCount)
	}
}

func TestNewDefaults(t *testing.T) {
	svc := New(Config{DBPath: "x"})
	if svc.cfg.Interval != time.Minute {
		t.Fatalf("Interval = %s, want 1m default", svc.cfg.Interval)
	}
	if svc.cfg.Addr == "" || svc.cfg.Location == nil {
		t.Fatalf("defaults not applied: %+v", svc.cfg)
	}
}

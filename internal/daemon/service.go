// Package daemon provides a long-running watcher that applies the daily
// rollover as soon as the reference-timezone day changes, and serves a
// small local status API.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/stash/internal/engine"
	"github.com/theirongolddev/stash/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath   string
	Location *time.Location
	Interval time.Duration
	Addr     string
}

// Snapshot is a compact document state for status payloads.
type Snapshot struct {
	At            time.Time `json:"at"`
	Today         string    `json:"today"`
	LastLoginDate string    `json:"last_login_date"`
	Plans         int       `json:"plans"`
	OpenDays      int       `json:"open_days"`
	TotalSavings  float64   `json:"total_savings"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt        time.Time `json:"started_at"`
	LastCheckAt      time.Time `json:"last_check_at"`
	CheckIntervalSec int       `json:"check_interval_sec"`
	CheckCount       int64     `json:"check_count"`
	RolloverCount    int64     `json:"rollover_count"`
	DBPath           string    `json:"db_path"`
	Timezone         string    `json:"timezone"`
	Summary          Snapshot  `json:"summary"`
	LastError        string    `json:"last_error,omitempty"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu            sync.RWMutex
	startedAt     time.Time
	lastCheckAt   time.Time
	checkCount    int64
	rolloverCount int64
	lastError     string
	snapshot      Snapshot
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Minute
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8878"
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Run starts the HTTP endpoints and the day-change watcher until ctx is
// canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed an initial check so status is useful immediately.
	s.checkOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.checkOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// checkOnce performs one read-modify-write cycle: load the document,
// roll over if the civil day changed, and persist.
func (s *Service) checkOnce() {
	now := time.Now()
	today := engine.Today(s.cfg.Location)

	rolled, snap, err := s.rolloverCycle(now, today)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCheckAt = now
	s.checkCount++
	if err != nil {
		s.lastError = err.Error()
		slog.Error("daemon check failed", "err", err)
		return
	}
	s.lastError = ""
	s.snapshot = snap
	if rolled {
		s.rolloverCount++
		slog.Info("rollover applied", "today", today, "total_savings", snap.TotalSavings)
	}
}

func (s *Service) rolloverCycle(now time.Time, today string) (bool, Snapshot, error) {
	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return false, Snapshot{}, err
	}
	defer func() { _ = st.Close() }()

	doc, err := st.Load()
	if err != nil {
		return false, Snapshot{}, err
	}

	rolled := engine.Rollover(doc, today)
	if rolled {
		if err := st.Save(doc); err != nil {
			return false, Snapshot{}, fmt.Errorf("persisting rollover: %w", err)
		}
	}

	open := 0
	for _, p := range doc.Plans {
		if p.DayActive {
			open++
		}
	}

	return rolled, Snapshot{
		At:            now,
		Today:         today,
		LastLoginDate: doc.LastLoginDate,
		Plans:         len(doc.Plans),
		OpenDays:      open,
		TotalSavings:  doc.TotalSavings,
	}, nil
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:        s.startedAt,
		LastCheckAt:      s.lastCheckAt,
		CheckIntervalSec: int(s.cfg.Interval.Seconds()),
		CheckCount:       s.checkCount,
		RolloverCount:    s.rolloverCount,
		DBPath:           s.cfg.DBPath,
		Timezone:         s.cfg.Location.String(),
		Summary:          s.snapshot,
		LastError:        s.lastError,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

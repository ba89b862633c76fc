// Package storage holds completed generation runs for the web UI. Runs
// live in memory only; a restart clears them.
package storage

import (
	"sort"
	"sync"

	"github.com/atelierfield/matspec/internal/models"
)

// RunStore is a concurrency-safe store of runs keyed by run ID.
type RunStore struct {
	runs map[string]*models.Run
	mu   sync.RWMutex
}

// New returns an empty RunStore.
func New() *RunStore {
	return &RunStore{
		runs: make(map[string]*models.Run),
	}
}

// Get returns the run with the given ID, if present.
func (s *RunStore) Get(runID string) (*models.Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, exists := s.runs[runID]
	return run, exists
}

// Set stores a run, replacing any existing run with the same ID.
func (s *RunStore) Set(runID string, run *models.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[runID] = run
}

// List returns all runs, newest first.
func (s *RunStore) List() []*models.Run {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]*models.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs
}

// Delete removes the run with the given ID. Deleting an unknown ID is a
// no-op.
func (s *RunStore) Delete(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
}

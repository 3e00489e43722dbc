package audit

import (
	"context"
	"sort"
	"strings"
	"sync"

	"backoffice/internal/models"
)

// MemoryStore keeps entries in a slice. It backs unit tests and can be told
// to fail appends to exercise the best-effort contract.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.LogEntry

	// FailWith makes every append return this error when set.
	FailWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, entry models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryStore) AppendMany(ctx context.Context, entries []models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	s.entries = append(s.entries, entries...)
	return nil
}

func (s *MemoryStore) Search(ctx context.Context, filter string, limit int64) ([]models.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.LogEntry
	for _, entry := range s.entries {
		if filter == "" || matches(entry, filter) {
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func matches(entry models.LogEntry, filter string) bool {
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(entry.ActorLabel), needle) ||
		strings.Contains(strings.ToLower(entry.Action), needle) ||
		strings.Contains(strings.ToLower(entry.Details), needle)
}

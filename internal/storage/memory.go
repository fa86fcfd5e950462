// ABOUTME: In-memory Repository implementation.
// ABOUTME: Backs tests and any run that should leave no files behind.
package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ticbuddy/internal/models"
)

// MemoryStore keeps everything in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*models.TicEntry
	profile *models.Profile
	history []models.ChatMessage
}

// Compile-time check that MemoryStore implements Repository.
var _ Repository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[uuid.UUID]*models.TicEntry{}}
}

func (s *MemoryStore) AppendEntry(e *models.TicEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.entries[e.ID] = &cp
	return nil
}

func (s *MemoryStore) RemoveEntry(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) ReplaceEntry(e *models.TicEntry) error {
	return s.AppendEntry(e)
}

func (s *MemoryStore) ListEntries(limit int) ([]*models.TicEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.sorted()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *MemoryStore) EntriesOn(date time.Time) ([]*models.TicEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TicEntry
	for _, e := range s.sorted() {
		if SameDay(e.Date, date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) EntriesInRange(start, end time.Time) ([]*models.TicEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TicEntry
	for _, e := range s.sorted() {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) ClearEntries() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[uuid.UUID]*models.TicEntry{}
	return nil
}

func (s *MemoryStore) LoadProfile() (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.NewProfile(), nil
	}
	cp := *s.profile
	return &cp, nil
}

func (s *MemoryStore) SaveProfile(p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.profile = &cp
	return nil
}

func (s *MemoryStore) LoadHistory() ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *MemoryStore) SaveHistory(msgs []models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	trimmed := TrimHistory(msgs)
	s.history = make([]models.ChatMessage, len(trimmed))
	copy(s.history, trimmed)
	return nil
}

func (s *MemoryStore) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// sorted returns entries by date descending. Callers hold the lock.
func (s *MemoryStore) sorted() []*models.TicEntry {
	entries := make([]*models.TicEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

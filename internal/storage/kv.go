// ABOUTME: Badger-backed key-value store for tic entries, profile, and chat history.
// ABOUTME: Uses type-prefixed keys with JSON values and client-side filtering.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/harperreed/ticbuddy/internal/models"
)

const (
	EntryPrefix = "tic:"
	ProfileKey  = "profile"
	HistoryKey  = "chat_history"
)

// KVStore is a badger-backed Repository.
type KVStore struct {
	db *badger.DB
}

// Compile-time check that KVStore implements Repository.
var _ Repository = (*KVStore)(nil)

// Open opens or creates a badger database under dir.
func Open(dir string) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &KVStore{db: db}, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ticbuddy")
}

// Close closes the underlying database.
func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AppendEntry stores a new tic entry.
func (s *KVStore) AppendEntry(e *models.TicEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	key := []byte(EntryPrefix + e.ID.String())
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// RemoveEntry deletes an entry by ID. Deleting an absent ID is not an
// error.
func (s *KVStore) RemoveEntry(id uuid.UUID) error {
	key := []byte(EntryPrefix + id.String())
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}
	return nil
}

// ReplaceEntry overwrites the stored entry with the same ID.
func (s *KVStore) ReplaceEntry(e *models.TicEntry) error {
	return s.AppendEntry(e)
}

// ListEntries returns entries most recent first, up to limit
// (0 = no limit). Entries that fail to decode are skipped.
func (s *KVStore) ListEntries(limit int) ([]*models.TicEntry, error) {
	entries, err := s.allEntries()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// EntriesOn returns entries whose date falls on the same calendar day.
func (s *KVStore) EntriesOn(date time.Time) ([]*models.TicEntry, error) {
	entries, err := s.allEntries()
	if err != nil {
		return nil, err
	}
	var out []*models.TicEntry
	for _, e := range entries {
		if SameDay(e.Date, date) {
			out = append(out, e)
		}
	}
	return out, nil
}

// EntriesInRange returns entries with start <= date <= end.
func (s *KVStore) EntriesInRange(start, end time.Time) ([]*models.TicEntry, error) {
	entries, err := s.allEntries()
	if err != nil {
		return nil, err
	}
	var out []*models.TicEntry
	for _, e := range entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ClearEntries deletes every stored tic entry.
func (s *KVStore) ClearEntries() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(EntryPrefix)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

// allEntries scans the entry namespace, sorted by date descending.
func (s *KVStore) allEntries() ([]*models.TicEntry, error) {
	var entries []*models.TicEntry
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(EntryPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var e models.TicEntry
				if err := json.Unmarshal(val, &e); err != nil {
					return nil // skip invalid entries
				}
				entries = append(entries, &e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

// LoadProfile returns the stored profile, or a fresh default when none
// exists or the stored one fails to decode.
func (s *KVStore) LoadProfile() (*models.Profile, error) {
	var profile *models.Profile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ProfileKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var p models.Profile
			if err := json.Unmarshal(val, &p); err != nil {
				return nil // corrupt profile resets to default
			}
			profile = &p
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return models.NewProfile(), nil
	}
	if profile.CompetingResponses == nil {
		profile.CompetingResponses = map[string]string{}
	}
	return profile, nil
}

// SaveProfile persists the profile.
func (s *KVStore) SaveProfile(p *models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(ProfileKey), data)
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadHistory returns the persisted chat history, or an empty history
// when none exists or it fails to decode.
func (s *KVStore) LoadHistory() ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(HistoryKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var history []models.ChatMessage
			if err := json.Unmarshal(val, &history); err != nil {
				return nil // corrupt history resets to empty
			}
			msgs = history
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return msgs, nil
}

// SaveHistory persists the trailing window of chat messages.
func (s *KVStore) SaveHistory(msgs []models.ChatMessage) error {
	data, err := json.Marshal(TrimHistory(msgs))
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(HistoryKey), data)
	})
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// ClearHistory removes the persisted chat history.
func (s *KVStore) ClearHistory() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(HistoryKey))
	})
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

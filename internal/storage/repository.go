// ABOUTME: Repository interface for tic log, profile, and chat history storage.
// ABOUTME: Three independent namespaces; each fails closed to its default on decode errors.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ticbuddy/internal/models"
)

// Repository defines the storage contract for TicBuddy data.
// Implementations must make every write atomic and immediately visible
// to subsequent reads. This interface allows swapping implementations
// (e.g., for testing).
type Repository interface {
	// Tic entry operations. AppendEntry stores a new entry;
	// RemoveEntry is a no-op when the ID is absent; ReplaceEntry
	// overwrites the entry with the same ID. Reads return entries
	// most recent first.
	AppendEntry(e *models.TicEntry) error
	RemoveEntry(id uuid.UUID) error
	ReplaceEntry(e *models.TicEntry) error
	ListEntries(limit int) ([]*models.TicEntry, error)
	EntriesOn(date time.Time) ([]*models.TicEntry, error)
	EntriesInRange(start, end time.Time) ([]*models.TicEntry, error)
	ClearEntries() error

	// Profile operations. LoadProfile returns a default profile when
	// none is stored or the stored one fails to decode.
	LoadProfile() (*models.Profile, error)
	SaveProfile(p *models.Profile) error

	// Chat history operations. SaveHistory persists at most
	// HistoryLimit trailing messages; LoadHistory returns an empty
	// history when none is stored or it fails to decode.
	LoadHistory() ([]models.ChatMessage, error)
	SaveHistory(msgs []models.ChatMessage) error
	ClearHistory() error

	// Lifecycle
	Close() error
}

// HistoryLimit bounds the persisted chat history. The in-memory
// session history is unbounded; only this trailing window survives a
// restart.
const HistoryLimit = 100

// SameDay reports whether two times fall on the same calendar day in
// the local zone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TrimHistory returns the trailing window of at most HistoryLimit
// messages.
func TrimHistory(msgs []models.ChatMessage) []models.ChatMessage {
	if len(msgs) <= HistoryLimit {
		return msgs
	}
	return msgs[len(msgs)-HistoryLimit:]
}

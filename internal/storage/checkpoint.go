// Package storage persists replay checkpoints and session summaries in an
// embedded BadgerDB store, the way UserPreferences/GameStats were once
// persisted here, repurposed for the replay-session domain.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/duelrewind/internal/message"
)

const (
	keyPrefixCheckpoint = "checkpoint:"
	keyPrefixSummary    = "summary:"
	keyStats            = "stats"
)

// Checkpoint is a resumable snapshot of one replay session: the full
// message log recorded so far, plus the cursor and realtime-watermark
// positions needed to reconstruct an Engine without re-deriving them from
// scratch.
type Checkpoint struct {
	SessionID      string        `json:"session_id"`
	Messages       []message.Any `json:"messages"`
	State          int           `json:"state"`
	ProcessedState int           `json:"processed_state"`
	SavedAt        time.Time     `json:"saved_at"`
}

// SessionSummary is the lightweight record listed by ListSessions, kept
// separate from the (potentially large) Checkpoint payload so a caller
// can enumerate sessions without paying to decode every message log.
type SessionSummary struct {
	SessionID   string    `json:"session_id"`
	TotalStates int       `json:"total_states"`
	CreatedAt   time.Time `json:"created_at"`
	LastSavedAt time.Time `json:"last_saved_at"`
}

// Stats is the cross-session accumulator RecordSession folds each closed
// session's SessionSummary into: a single running total rather than one
// row per session.
type Stats struct {
	SessionsRecorded int           `json:"sessions_recorded"`
	TotalMessages    int           `json:"total_messages"`
	TotalDuration    time.Duration `json:"total_duration"`
	LastFinalState   int           `json:"last_final_state"`
}

// NewStats returns the zero-valued accumulator a fresh store starts from.
func NewStats() *Stats {
	return &Stats{}
}

// Store wraps BadgerDB for persistent checkpoint/summary storage.
type Store struct {
	db *badger.DB
}

// Open creates or reopens the on-disk store at the platform data
// directory's db subdirectory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// OpenAt creates or reopens the store at an explicit directory, for
// callers (tests, the CLI's data_dir config setting) that don't want the
// platform default.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCheckpoint persists cp under sessionID, overwriting any previous
// checkpoint with the same id, and updates its SessionSummary entry.
func (s *Store) SaveCheckpoint(sessionID string, cp Checkpoint) error {
	cp.SessionID = sessionID
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	summary, err := s.loadSummary(sessionID)
	if err != nil {
		return err
	}
	if summary == nil {
		summary = &SessionSummary{SessionID: sessionID, CreatedAt: cp.SavedAt}
	}
	summary.TotalStates = len(cp.Messages)
	summary.LastSavedAt = cp.SavedAt

	summaryData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyPrefixCheckpoint+sessionID), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyPrefixSummary+sessionID), summaryData)
	})
}

// LoadCheckpoint retrieves the checkpoint for sessionID. The bool result
// reports whether one was found; a missing checkpoint is not an error.
func (s *Store) LoadCheckpoint(sessionID string) (Checkpoint, bool, error) {
	var cp Checkpoint
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefixCheckpoint + sessionID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			found = true
			return json.Unmarshal(val, &cp)
		})
	})
	return cp, found, err
}

// loadSummary retrieves the summary for sessionID, returning (nil, nil) if
// none exists yet.
func (s *Store) loadSummary(sessionID string) (*SessionSummary, error) {
	var summary *SessionSummary
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefixSummary + sessionID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			summary = &SessionSummary{}
			return json.Unmarshal(val, summary)
		})
	})
	return summary, err
}

// ListSessions returns every saved session's summary, ordered by key.
func (s *Store) ListSessions() ([]*SessionSummary, error) {
	var out []*SessionSummary
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keyPrefixSummary)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				summary := &SessionSummary{}
				if err := json.Unmarshal(val, summary); err != nil {
					return err
				}
				out = append(out, summary)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

// DeleteSession removes both the checkpoint and summary for sessionID.
func (s *Store) DeleteSession(sessionID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(keyPrefixCheckpoint + sessionID)); err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Delete([]byte(keyPrefixSummary + sessionID))
	})
}

// LoadStats returns the cross-session accumulator, or a fresh zero value
// if no session has been recorded yet.
func (s *Store) LoadStats() (*Stats, error) {
	stats := NewStats()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}

// SaveStats overwrites the cross-session accumulator.
func (s *Store) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// RecordSession folds a closed session's summary into the running
// cross-session Stats: message count, session duration, and its final
// state.
func (s *Store) RecordSession(summary SessionSummary) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.SessionsRecorded++
	stats.TotalMessages += summary.TotalStates
	stats.TotalDuration += summary.LastSavedAt.Sub(summary.CreatedAt)
	stats.LastFinalState = summary.TotalStates
	return s.SaveStats(stats)
}

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/yeager/lugn/internal/io"
	"github.com/yeager/lugn/internal/model"
)

// FileName is the session log file name inside the config directory.
const FileName = "sessions.json"

// MaxEntries caps the session log; older entries are dropped first.
const MaxEntries = 200

// Store reads and appends the session log, a JSON array kept at the
// most recent MaxEntries records.
//
// The log is append-only from the application's point of view: Add is
// the only mutation besides Clear, and it rewrites the capped array.
//
// Example:
//
//	store := session.NewStore(session.DefaultPath())
//	err := store.Add(model.NewSession(model.SessionBreathing, 90, 6, 2, time.Now()))
//	recent := store.All()
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard session log location,
// $XDG_CONFIG_HOME/lugn/sessions.json.
func DefaultPath() string {
	return filepath.Join(ioutils.UserConfigDir(), FileName)
}

// All returns every logged session, oldest first.
//
// A missing, unreadable, or malformed log yields an empty list; the
// log is best-effort history, never a reason to fail.
func (s *Store) All() []model.Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var sessions []model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil
	}
	return sessions
}

// Add appends a session and rewrites the log, keeping only the most
// recent MaxEntries records.
func (s *Store) Add(sess model.Session) error {
	sessions := append(s.All(), sess)
	if len(sessions) > MaxEntries {
		sessions = sessions[len(sessions)-MaxEntries:]
	}
	return s.write(sessions)
}

// Clear removes every logged session.
func (s *Store) Clear() error {
	return s.write([]model.Session{})
}

func (s *Store) write(sessions []model.Session) error {
	if err := ioutils.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write sessions: %w", err)
	}
	return nil
}

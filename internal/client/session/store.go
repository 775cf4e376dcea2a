package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// sessionRecord is the on-disk layout of a Session: one flat object whose
// keys mirror the mobile app's preference entries.
type sessionRecord struct {
	Token     string `json:"token"`
	LoggedIn  bool   `json:"is_logged_in"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionRecord{
		Token:     s.Token,
		LoggedIn:  s.LoggedIn,
		UserID:    s.User.ID,
		FirstName: s.User.FirstName,
		LastName:  s.User.LastName,
		Email:     s.User.Email,
		Role:      s.User.Role,
		CreatedAt: s.User.CreatedAt,
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*s = Session{
		Token:    rec.Token,
		LoggedIn: rec.LoggedIn,
		User: User{
			ID:        rec.UserID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
			Role:      rec.Role,
			CreatedAt: rec.CreatedAt,
		},
	}
	return nil
}

// Store is durable key-value storage for the Session. Load never fails with
// "not found": an absent record yields the zero Session.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session in a single JSON file. Writes go through a
// temporary file in the same directory followed by a rename, so readers
// observe either the previous or the new session, never a partial one.
// Single-process, single-writer access is assumed.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("decode session file: %w", err)
	}
	return sess, nil
}

func (s *FileStore) Save(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

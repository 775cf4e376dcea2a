package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_Load_MissingFileReturnsZeroSession(t *testing.T) {
	s := newFileStore(t)

	sess, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Session{}, sess)
}

func TestFileStore_SaveThenLoad_RoundTrips(t *testing.T) {
	s := newFileStore(t)

	in := Session{
		Token:    "abc123",
		LoggedIn: true,
		User: User{
			ID:        "u-1",
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Role:      "user",
			CreatedAt: "2024-05-01T10:00:00Z",
		},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStore_Save_WritesFlatKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(Session{
		Token:    "abc123",
		LoggedIn: true,
		User: User{
			ID:        "u-1",
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Role:      "user",
			CreatedAt: "2024-05-01T10:00:00Z",
		},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// one flat object, profile fields at the top level under the app's key names
	assert.Equal(t, "abc123", raw["token"])
	assert.Equal(t, true, raw["is_logged_in"])
	assert.Equal(t, "u-1", raw["user_id"])
	assert.Equal(t, "Asha", raw["first_name"])
	assert.Equal(t, "Verma", raw["last_name"])
	assert.Equal(t, "asha@example.com", raw["email"])
	assert.Equal(t, "user", raw["role"])
	assert.Equal(t, "2024-05-01T10:00:00Z", raw["created_at"])
	assert.NotContains(t, raw, "user")
	assert.NotContains(t, raw, "id")
}

func TestFileStore_Clear_RemovesSessionAndIsIdempotent(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save(Session{Token: "t"}))
	require.NoError(t, s.Clear())

	sess, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Session{}, sess)

	// clearing an already-empty store must not fail
	require.NoError(t, s.Clear())
}

func TestFileStore_Save_OverwritesLeavesNoResidue(t *testing.T) {
	s := newFileStore(t)

	require.NoError(t, s.Save(Session{
		Token: "t1",
		User:  User{ID: "u-1", FirstName: "First", Email: "first@example.com"},
	}))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Save(Session{
		Token: "t2",
		User:  User{ID: "u-2", Email: "second@example.com"},
	}))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "t2", out.Token)
	assert.Equal(t, "u-2", out.User.ID)
	assert.Empty(t, out.User.FirstName)
	assert.Equal(t, "second@example.com", out.User.Email)
}

func TestFileStore_Load_CorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewFileStore(path)
	_, err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode session file")
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"pathshala/internal/server/models"
	"pathshala/internal/server/repositories/repomanager"
	"pathshala/internal/server/storage"
)

// NoteEntry pairs a stored note with a short-lived download URL.
type NoteEntry struct {
	Note        *models.Note
	DownloadURL string
}

// NoteService stores note files in object storage and their metadata in
// the database.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     storage.Service
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, store storage.Service) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: m,
		storage:     store,
	}
}

// Upload streams the file body to object storage and records the note. The
// object is written first; a metadata failure leaves an orphaned object
// rather than a dangling database row. The returned entry carries a
// presigned download URL for the new note.
func (s *NoteService) Upload(ctx context.Context, userID string, note *models.Note, body io.Reader) (*NoteEntry, error) {
	key := s.storage.RandomKey()

	if err := s.storage.Upload(ctx, key, note.ContentType, body); err != nil {
		return nil, fmt.Errorf("error uploading note file: %w", err)
	}

	note.StorageKey = key
	note.UploadedBy = userID

	repo := s.repomanager.Notes(s.db)
	created, err := repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	url, err := s.storage.PresignGet(ctx, created.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("error presigning note %s: %w", created.ID, err)
	}

	return &NoteEntry{Note: created, DownloadURL: url}, nil
}

// ListForUser returns the user's notes, newest first, each with a presigned
// download URL.
func (s *NoteService) ListForUser(ctx context.Context, userID string) ([]*NoteEntry, error) {
	notes, err := s.repomanager.Notes(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return s.presignAll(ctx, notes)
}

// ListAll returns every user's notes, newest first. Reserved for admins.
func (s *NoteService) ListAll(ctx context.Context) ([]*NoteEntry, error) {
	notes, err := s.repomanager.Notes(s.db).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return s.presignAll(ctx, notes)
}

func (s *NoteService) presignAll(ctx context.Context, notes []*models.Note) ([]*NoteEntry, error) {
	entries := make([]*NoteEntry, 0, len(notes))
	for _, n := range notes {
		url, err := s.storage.PresignGet(ctx, n.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error presigning note %s: %w", n.ID, err)
		}
		entries = append(entries, &NoteEntry{Note: n, DownloadURL: url})
	}
	return entries, nil
}

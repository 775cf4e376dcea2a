package notes

import (
	"context"
	"fmt"

	"pathshala/internal/dbx"
	"pathshala/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (title, description, file_name, content_type, file_size, s3_key, uploaded_by)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Description, note.FileName, note.ContentType, note.FileSize, note.StorageKey, note.UploadedBy).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	query :=
		`SELECT id, title, description, file_name, content_type, file_size, s3_key, uploaded_by, created_at, updated_at FROM notes
		 WHERE uploaded_by = $1
		 ORDER BY created_at DESC
		 `

	return r.queryNotes(ctx, query, userID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Note, error) {
	query :=
		`SELECT id, title, description, file_name, content_type, file_size, s3_key, uploaded_by, created_at, updated_at FROM notes
		 ORDER BY created_at DESC
		 `

	return r.queryNotes(ctx, query)
}

func (r *PostgresRepository) queryNotes(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		n := &models.Note{}
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.FileName, &n.ContentType,
			&n.FileSize, &n.StorageKey, &n.UploadedBy, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

package models

import "time"

// Note describes server-side metadata for an uploaded study material.
// The file content itself is stored in object storage under StorageKey.
type Note struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	FileName    string    `db:"file_name"`
	ContentType string    `db:"content_type"`
	FileSize    int64     `db:"file_size"`
	StorageKey  string    `db:"s3_key"`
	UploadedBy  string    `db:"uploaded_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

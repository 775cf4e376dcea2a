package notes

import (
	"context"

	"pathshala/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Note, error)
	ListAll(ctx context.Context) ([]*models.Note, error)
}

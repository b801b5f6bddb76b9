package memories

import (
	"context"

	"github.com/memorywall/backend/pkg/db"
	"github.com/memorywall/backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists memories.
type Repository struct {
	db *gorm.DB
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{db: client.DB()}
}

// Create inserts a memory row and returns it with generated fields populated.
func (r *Repository) Create(ctx context.Context, memory *models.Memory) (*models.Memory, error) {
	if err := r.db.WithContext(ctx).Create(memory).Error; err != nil {
		return nil, err
	}
	return memory, nil
}

// ListOrdered returns memories ordered by date with id as tie-break, so two
// memories on the same day always come back in the same order. A limit of
// zero means no limit.
func (r *Repository) ListOrdered(ctx context.Context, direction Direction, limit int) ([]models.Memory, error) {
	query := r.db.WithContext(ctx).Model(&models.Memory{})

	if direction == Descending {
		query = query.Order("date DESC").Order("id DESC")
	} else {
		query = query.Order("date ASC").Order("id ASC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.Memory
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

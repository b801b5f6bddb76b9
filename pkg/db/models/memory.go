package models

import (
	"time"

	"github.com/google/uuid"
)

// Memory is a single wall entry. Rows are append-only: the app exposes no
// update or delete path, so every field except the generated id arrives
// through a validated submission.
type Memory struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title     *string   `gorm:"column:title"`
	Caption   *string   `gorm:"column:caption"`
	Date      time.Time `gorm:"column:date;not null"`
	MediaURL  *string   `gorm:"column:media_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the collection name; the historical app flip-flopped between
// "memories" and "MemoryWall", and "memories" is the later of the two.
func (Memory) TableName() string {
	return "memories"
}

package memories

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/memorywall/backend/pkg/db/models"
	"github.com/memorywall/backend/pkg/enums"
)

// Direction orders a timeline query by date.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection converts raw query input into a Direction.
func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	case "":
		return Ascending, nil
	}
	return "", fmt.Errorf("invalid direction %q", value)
}

// MediaUpload carries one attached file through the create pipeline.
type MediaUpload struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// SubmissionInput is the raw form payload before validation.
type SubmissionInput struct {
	Title   string
	Caption string
	Date    string
	Media   *MediaUpload
}

// ValidatedMemory is a submission that passed validation and is ready to
// persist. Optional fields are nil when never provided, never "".
type ValidatedMemory struct {
	Title   *string
	Caption *string
	Date    time.Time
}

// MemoryView is the API projection of a stored memory.
type MemoryView struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Caption   *string   `json:"caption,omitempty"`
	Date      time.Time `json:"date"`
	MediaURL  *string   `json:"media_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps a row to its API projection.
func FromModel(m *models.Memory) MemoryView {
	return MemoryView{
		ID:        m.ID,
		Title:     m.Title,
		Caption:   m.Caption,
		Date:      m.Date,
		MediaURL:  m.MediaURL,
		CreatedAt: m.CreatedAt,
	}
}

// DisplayCard is the render-ready projection of a memory (or a synthetic
// placeholder). RotationAngle and MediaKind are computed at assembly time and
// never stored.
type DisplayCard struct {
	ID            string          `json:"id"`
	Title         *string         `json:"title,omitempty"`
	Caption       *string         `json:"caption,omitempty"`
	Date          time.Time       `json:"date"`
	MediaURL      *string         `json:"media_url,omitempty"`
	RotationAngle float64         `json:"rotation_angle"`
	MediaKind     enums.MediaKind `json:"media_kind"`
}

package memories

import (
	"github.com/memorywall/backend/pkg/db/models"
)

// Assembler turns stored rows (or fallback cards) into render-ready display
// cards. The tilt function is fixed per assembler so the timeline and the
// preview strip can scatter cards differently.
type Assembler struct {
	angle func(key string) float64
}

func NewAssembler(angle func(key string) float64) *Assembler {
	return &Assembler{angle: angle}
}

// Assemble maps rows to cards, or decorates the fallback cards when the wall
// is empty. Every card gets its rotation and media kind computed the same
// way, so placeholders are indistinguishable from real memories in shape.
func (a *Assembler) Assemble(rows []models.Memory, fallback []DisplayCard) []DisplayCard {
	if len(rows) == 0 {
		cards := make([]DisplayCard, len(fallback))
		for i, card := range fallback {
			cards[i] = a.decorate(card)
		}
		return cards
	}

	cards := make([]DisplayCard, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		cards = append(cards, a.decorate(DisplayCard{
			ID:       row.ID.String(),
			Title:    row.Title,
			Caption:  row.Caption,
			Date:     row.Date,
			MediaURL: row.MediaURL,
		}))
	}
	return cards
}

func (a *Assembler) decorate(card DisplayCard) DisplayCard {
	card.RotationAngle = a.angle(card.ID)

	mediaURL := ""
	if card.MediaURL != nil {
		mediaURL = *card.MediaURL
	}
	card.MediaKind = KindFromURL(mediaURL)
	return card
}

package memories

import (
	"context"
	"fmt"
	"time"

	"github.com/memorywall/backend/pkg/logger"
)

// Built-in placeholder media, used whenever the bucket probe cannot confirm
// the curated placeholder objects.
var builtinPlaceholderURLs = []string{
	"https://wallpapersok.com/images/hd/aesthetic-photography-scenery-of-lake-0jpchtm8lkzfew9g.jpg",
	"https://i.redd.it/vmfumh3o1zt91.jpg",
	"https://photoshulk.com/wp-content/uploads/Nature-Full-HD-Background.jpg",
}

const (
	placeholderIDPrefix    = "sample-"
	placeholderTitle       = "Sample Memory Caption"
	placeholderDescription = "A treasured memory."
)

// placeholderProber is the slice of the blob client the supplier needs.
type placeholderProber interface {
	ObjectExists(ctx context.Context, object string) (bool, error)
	PublicURL(object string) string
}

// FallbackSupplier produces synthetic cards for an empty wall, so the page
// never renders blank before the first real memory is saved.
type FallbackSupplier struct {
	blobs  placeholderProber
	prefix string
	slots  int
	logg   *logger.Logger
	now    func() time.Time
}

func NewFallbackSupplier(blobs placeholderProber, prefix string, slots int, logg *logger.Logger) *FallbackSupplier {
	if slots <= 0 {
		slots = len(builtinPlaceholderURLs)
	}
	return &FallbackSupplier{
		blobs:  blobs,
		prefix: prefix,
		slots:  slots,
		logg:   logg,
		now:    time.Now,
	}
}

// Supply returns maxCount placeholder cards. Curated bucket objects are
// preferred; if any probe misses or errors, the built-in URL list takes over.
// Media cycles across the cards by index so any count of slots can be filled.
func (s *FallbackSupplier) Supply(ctx context.Context, maxCount int) []DisplayCard {
	if maxCount <= 0 {
		maxCount = s.slots
	}

	urls := s.curatedURLs(ctx)
	if len(urls) == 0 {
		urls = builtinPlaceholderURLs
	}

	now := s.now()
	title := placeholderTitle
	caption := placeholderDescription

	cards := make([]DisplayCard, 0, maxCount)
	for i := 0; i < maxCount; i++ {
		mediaURL := urls[i%len(urls)]
		cards = append(cards, DisplayCard{
			ID:       fmt.Sprintf("%s%d", placeholderIDPrefix, i),
			Title:    &title,
			Caption:  &caption,
			Date:     now,
			MediaURL: &mediaURL,
		})
	}
	return cards
}

// curatedURLs probes the bucket for the curated placeholder set. All objects
// must be confirmed present, otherwise the whole set is rejected and the
// caller falls back to the built-in URLs.
func (s *FallbackSupplier) curatedURLs(ctx context.Context) []string {
	if s.blobs == nil {
		return nil
	}

	urls := make([]string, 0, s.slots)
	for i := 0; i < s.slots; i++ {
		object := fmt.Sprintf("%s/%s%d.jpg", s.prefix, placeholderIDPrefix, i)
		exists, err := s.blobs.ObjectExists(ctx, object)
		if err != nil {
			if s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "object", object), "placeholder probe failed, using built-in media")
			}
			return nil
		}
		if !exists {
			return nil
		}
		urls = append(urls, s.blobs.PublicURL(object))
	}
	return urls
}

package enums

// MediaKind is the render mode resolved for a display card.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	// MediaKindNone covers both "no media attached" and URLs whose extension
	// matches neither list; the renderer skips the media slot for both.
	MediaKindNone MediaKind = "none"
)

// String returns the literal string for the kind.
func (m MediaKind) String() string {
	return string(m)
}

// IsValid reports whether the kind is known.
func (m MediaKind) IsValid() bool {
	switch m {
	case MediaKindImage, MediaKindVideo, MediaKindNone:
		return true
	}
	return false
}

package memories

// Rotation spans for the two wall layouts. The dense preview strip uses the
// narrow span so cards stay mostly upright; the full timeline uses the wide
// span for a more scattered look.
const (
	previewSpan  int32 = 7
	previewShift       = 3.0

	timelineSpan  int32 = 15
	timelineShift       = 7.5
)

// foldKey folds a card key into a signed 32-bit accumulator. Overflow wraps,
// so the same key always lands on the same value on every platform.
func foldKey(key string) int32 {
	var hash int32
	for i := 0; i < len(key); i++ {
		hash = int32(key[i]) + hash<<5 - hash
	}
	return hash
}

// Angle maps a card key deterministically into [-shift, span-shift).
func Angle(key string, span int32, shift float64) float64 {
	hash := foldKey(key)
	if hash < 0 {
		hash = -hash
	}
	return float64(hash%span) - shift
}

// PreviewAngle is the tilt used on the home preview strip.
func PreviewAngle(key string) float64 {
	return Angle(key, previewSpan, previewShift)
}

// TimelineAngle is the tilt used on the full timeline wall.
func TimelineAngle(key string) float64 {
	return Angle(key, timelineSpan, timelineShift)
}

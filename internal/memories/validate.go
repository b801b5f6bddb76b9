package memories

import (
	"strings"
	"time"

	pkgerrors "github.com/memorywall/backend/pkg/errors"
)

// Date layouts accepted from the submission form, tried in order. The bare
// date form is what the date picker submits; the longer forms cover clients
// that send a full timestamp.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ValidateSubmission checks a raw submission and normalizes it for
// persistence. The date is required and must parse; title and caption are
// optional and kept verbatim, with blank values treated as absent.
func ValidateSubmission(input SubmissionInput) (*ValidatedMemory, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be a valid calendar date").
			WithDetails(map[string]any{"field": "date", "value": input.Date})
	}

	return &ValidatedMemory{
		Title:   optionalText(input.Title),
		Caption: optionalText(input.Caption),
		Date:    date,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// optionalText maps blank strings to nil so the stored row distinguishes
// "not provided" from real text. Provided values are not trimmed.
func optionalText(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

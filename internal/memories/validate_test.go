package memories

import (
	"testing"
	"time"

	pkgerrors "github.com/memorywall/backend/pkg/errors"
)

func TestValidateSubmissionAcceptsDateLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-06-15T18:30", time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)},
		{"2024-06-15T18:30:00Z", time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		validated, err := ValidateSubmission(SubmissionInput{Date: tc.raw})
		if err != nil {
			t.Fatalf("date %q rejected: %v", tc.raw, err)
		}
		if !validated.Date.Equal(tc.want) {
			t.Fatalf("date %q parsed to %v, want %v", tc.raw, validated.Date, tc.want)
		}
	}
}

func TestValidateSubmissionRejectsInvalidDate(t *testing.T) {
	for _, raw := range []string{"", "  ", "not-a-date", "15/06/2024", "2024-13-40"} {
		_, err := ValidateSubmission(SubmissionInput{Date: raw})
		if err == nil {
			t.Fatalf("expected rejection for date %q", raw)
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestValidateSubmissionNormalizesBlankText(t *testing.T) {
	validated, err := ValidateSubmission(SubmissionInput{Title: "   ", Caption: "", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if validated.Title != nil {
		t.Fatalf("blank title should be nil, got %q", *validated.Title)
	}
	if validated.Caption != nil {
		t.Fatalf("blank caption should be nil, got %q", *validated.Caption)
	}
}

func TestValidateSubmissionKeepsProvidedTextVerbatim(t *testing.T) {
	validated, err := ValidateSubmission(SubmissionInput{
		Title:   " Beach Day ",
		Caption: "our first trip",
		Date:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if validated.Title == nil || *validated.Title != " Beach Day " {
		t.Fatalf("title not kept verbatim: %v", validated.Title)
	}
	if validated.Caption == nil || *validated.Caption != "our first trip" {
		t.Fatalf("caption not kept verbatim: %v", validated.Caption)
	}
}

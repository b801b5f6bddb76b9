package controllers

import (
	"errors"
	"net/http"

	"github.com/memorywall/backend/api/responses"
	"github.com/memorywall/backend/api/validators"
	"github.com/memorywall/backend/internal/memories"
	pkgerrors "github.com/memorywall/backend/pkg/errors"
	"github.com/memorywall/backend/pkg/logger"
)

const (
	mediaFormField    = "media"
	maxTimelineLimit  = 500
	multipartMemoryMB = 16
)

// MemoryCreate accepts a multipart submission with an optional media file and
// runs it through the create pipeline.
func MemoryCreate(svc memories.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memory service unavailable"))
			return
		}

		if maxUploadMB > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, int64(maxUploadMB+1)<<20)
		}

		if err := r.ParseMultipartForm(multipartMemoryMB << 20); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		input := memories.SubmissionInput{
			Title:   r.FormValue("title"),
			Caption: r.FormValue("caption"),
			Date:    r.FormValue("date"),
		}

		file, header, err := r.FormFile(mediaFormField)
		switch {
		case err == nil:
			defer func() { _ = file.Close() }()
			input.Media = &memories.MediaUpload{
				FileName:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				SizeBytes:   header.Size,
				Content:     file,
			}
		case errors.Is(err, http.ErrMissingFile):
			// media is optional
		default:
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading media upload"))
			return
		}

		view, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// MemoryTimeline returns the ordered wall, with placeholder cards when empty.
func MemoryTimeline(svc memories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memory service unavailable"))
			return
		}

		direction, err := memories.ParseDirection(r.URL.Query().Get("direction"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "direction must be asc or desc").
					WithDetails(map[string]any{"field": "direction"}))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxTimelineLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cards, err := svc.Timeline(r.Context(), direction, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cards)
	}
}

// MemoryPreview returns the newest memories for the home strip.
func MemoryPreview(svc memories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memory service unavailable"))
			return
		}

		cards, err := svc.Preview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cards)
	}
}

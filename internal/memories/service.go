package memories

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/memorywall/backend/pkg/db/models"
	pkgerrors "github.com/memorywall/backend/pkg/errors"
	"github.com/memorywall/backend/pkg/logger"
	"github.com/memorywall/backend/pkg/metrics"
)

const previewLimit = 5

// blobStore is the slice of the storage client the service needs.
type blobStore interface {
	Upload(ctx context.Context, object, contentType string, body io.Reader) (string, error)
}

type memoryRepository interface {
	Create(ctx context.Context, memory *models.Memory) (*models.Memory, error)
	ListOrdered(ctx context.Context, direction Direction, limit int) ([]models.Memory, error)
}

type placeholderSupplier interface {
	Supply(ctx context.Context, maxCount int) []DisplayCard
}

// Service is the memory pipeline: validated submissions in, render-ready
// display cards out.
type Service interface {
	Create(ctx context.Context, input SubmissionInput) (*MemoryView, error)
	Timeline(ctx context.Context, direction Direction, limit int) ([]DisplayCard, error)
	Preview(ctx context.Context) ([]DisplayCard, error)
}

type service struct {
	repo     memoryRepository
	blobs    blobStore
	fallback placeholderSupplier
	timeline *Assembler
	preview  *Assembler
	metrics  *metrics.PipelineMetrics
	logg     *logger.Logger

	fallbackSlots  int
	maxUploadBytes int64
	now            func() time.Time
}

// Options wires the service's collaborators.
type Options struct {
	Repo          memoryRepository
	Blobs         blobStore
	Fallback      placeholderSupplier
	Metrics       *metrics.PipelineMetrics
	Logger        *logger.Logger
	FallbackSlots int
	MaxUploadMB   int
}

func NewService(opts Options) Service {
	return &service{
		repo:           opts.Repo,
		blobs:          opts.Blobs,
		fallback:       opts.Fallback,
		timeline:       NewAssembler(TimelineAngle),
		preview:        NewAssembler(PreviewAngle),
		metrics:        opts.Metrics,
		logg:           opts.Logger,
		fallbackSlots:  opts.FallbackSlots,
		maxUploadBytes: int64(opts.MaxUploadMB) << 20,
		now:            time.Now,
	}
}

// Create validates a submission, uploads its media blob, then writes the
// memory row. The blob upload happens strictly first: if it fails, no row is
// written. If the row write fails after a successful upload the blob is left
// behind; that orphan is logged and accepted rather than rolled back.
func (s *service) Create(ctx context.Context, input SubmissionInput) (*MemoryView, error) {
	started := s.now()

	validated, err := ValidateSubmission(input)
	if err != nil {
		s.metrics.IncSubmission("rejected")
		return nil, err
	}

	var mediaURL *string
	if input.Media != nil {
		url, err := s.uploadMedia(ctx, input.Media)
		if err != nil {
			s.metrics.IncSubmission("storage_failed")
			return nil, err
		}
		mediaURL = &url
	}

	row := &models.Memory{
		Title:    validated.Title,
		Caption:  validated.Caption,
		Date:     validated.Date,
		MediaURL: mediaURL,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		s.metrics.IncSubmission("write_failed")
		if mediaURL != nil {
			s.logg.Warn(s.logg.WithField(ctx, "blob_url", *mediaURL), "memory write failed after blob upload, blob orphaned")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting memory")
	}

	s.metrics.IncSubmission("accepted")
	s.metrics.ObserveCreate(s.now().Sub(started))

	view := FromModel(created)
	return &view, nil
}

func (s *service) uploadMedia(ctx context.Context, media *MediaUpload) (string, error) {
	if s.maxUploadBytes > 0 && media.SizeBytes > s.maxUploadBytes {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "media exceeds the upload size limit").
			WithDetails(map[string]any{"field": "media", "max_bytes": s.maxUploadBytes})
	}

	contentType, content, err := SniffContentType(media.ContentType, media.Content)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading media content")
	}

	object := fmt.Sprintf("%s/%s_%d", FolderFor(contentType), path.Base(media.FileName), s.now().UnixMilli())
	url, err := s.blobs.Upload(ctx, object, contentType, content)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "uploading media blob")
	}
	return url, nil
}

// Timeline returns the full wall in the requested order. An empty wall is
// filled with placeholder cards instead of rendering blank.
func (s *service) Timeline(ctx context.Context, direction Direction, limit int) ([]DisplayCard, error) {
	rows, err := s.repo.ListOrdered(ctx, direction, limit)
	if err != nil {
		s.metrics.IncTimelineLoad("query_failed")
		s.logg.Error(ctx, "timeline query failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing memories")
	}

	if len(rows) == 0 {
		s.metrics.IncTimelineLoad("fallback")
		s.metrics.IncFallback()
		return s.timeline.Assemble(nil, s.fallback.Supply(ctx, s.fallbackSlots)), nil
	}

	s.metrics.IncTimelineLoad("ok")
	return s.timeline.Assemble(rows, nil), nil
}

// Preview returns the newest memories for the home strip, tilted with the
// narrow rotation span. An empty wall previews as an empty list.
func (s *service) Preview(ctx context.Context) ([]DisplayCard, error) {
	rows, err := s.repo.ListOrdered(ctx, Descending, previewLimit)
	if err != nil {
		s.metrics.IncTimelineLoad("query_failed")
		s.logg.Error(ctx, "preview query failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing recent memories")
	}

	s.metrics.IncTimelineLoad("ok")
	return s.preview.Assemble(rows, nil), nil
}

package memories

import (
	"bytes"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/memorywall/backend/pkg/enums"
)

// Storage folders per media family. Everything that is not a video lands in
// the image folder, matching the two-way split the wall renders.
const (
	FolderImages = "images"
	FolderVideos = "videos"
)

const sniffLimit = 3072

// Render-time extension lists. The kind shown on the wall comes from the URL
// alone, independent of how the blob was classified at upload time.
var (
	videoExtensions = map[string]struct{}{
		"mp4": {}, "mov": {}, "webm": {}, "ogg": {},
	}
	imageExtensions = map[string]struct{}{
		"jpeg": {}, "jpg": {}, "gif": {}, "png": {},
	}
)

// FolderFor picks the storage folder from a MIME type. Only the "video/"
// prefix matters; unknown and empty types fall through to images.
func FolderFor(contentType string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "video/") {
		return FolderVideos
	}
	return FolderImages
}

// SniffContentType resolves the effective MIME type of an upload. A declared
// type from the client wins; otherwise the first bytes of content are sniffed.
// The returned reader replays any bytes consumed by the sniff.
func SniffContentType(declared string, content io.Reader) (string, io.Reader, error) {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared, content, nil
	}

	header := make([]byte, sniffLimit)
	n, err := io.ReadFull(content, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}

	mtype := mimetype.Detect(header[:n])
	return mtype.String(), io.MultiReader(bytes.NewReader(header[:n]), content), nil
}

// KindFromURL resolves the render kind from a media URL's file extension.
// Query strings and fragments are ignored and matching is case-insensitive.
// Anything unrecognized renders as no media at all.
func KindFromURL(raw string) enums.MediaKind {
	if strings.TrimSpace(raw) == "" {
		return enums.MediaKindNone
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return enums.MediaKindNone
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(parsed.Path), "."))
	if _, ok := videoExtensions[ext]; ok {
		return enums.MediaKindVideo
	}
	if _, ok := imageExtensions[ext]; ok {
		return enums.MediaKindImage
	}
	return enums.MediaKindNone
}

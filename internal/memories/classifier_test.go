package memories

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/memorywall/backend/pkg/enums"
)

func TestFolderFor(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"video/mp4", FolderVideos},
		{"video/quicktime", FolderVideos},
		{"VIDEO/webm", FolderVideos},
		{"image/png", FolderImages},
		{"image/gif", FolderImages},
		{"application/octet-stream", FolderImages},
		{"", FolderImages},
	}
	for _, tc := range cases {
		if got := FolderFor(tc.contentType); got != tc.want {
			t.Fatalf("FolderFor(%q) = %q, want %q", tc.contentType, got, tc.want)
		}
	}
}

func TestKindFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want enums.MediaKind
	}{
		{"https://storage.googleapis.com/bucket/images/pic.jpg_1700000000000", enums.MediaKindNone},
		{"https://example.com/clip.mp4", enums.MediaKindVideo},
		{"https://example.com/clip.MOV?token=abc", enums.MediaKindVideo},
		{"https://example.com/clip.webm#t=10", enums.MediaKindVideo},
		{"https://example.com/clip.ogg", enums.MediaKindVideo},
		{"https://example.com/pic.png", enums.MediaKindImage},
		{"https://example.com/pic.JPEG?w=800&h=600", enums.MediaKindImage},
		{"https://example.com/pic.gif", enums.MediaKindImage},
		{"https://example.com/pic.jpg", enums.MediaKindImage},
		{"https://example.com/document.pdf", enums.MediaKindNone},
		{"https://example.com/no-extension", enums.MediaKindNone},
		{"", enums.MediaKindNone},
		{"   ", enums.MediaKindNone},
	}
	for _, tc := range cases {
		if got := KindFromURL(tc.url); got != tc.want {
			t.Fatalf("KindFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestSniffContentTypeDeclaredWins(t *testing.T) {
	body := strings.NewReader("not really a video")
	contentType, reader, err := SniffContentType("video/mp4", body)
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if contentType != "video/mp4" {
		t.Fatalf("expected declared type to win, got %q", contentType)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "not really a video" {
		t.Fatalf("content altered: %q", data)
	}
}

func TestSniffContentTypeDetectsAndReplays(t *testing.T) {
	// Minimal PNG signature followed by filler.
	payload := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 64)...)

	contentType, reader, err := SniffContentType("", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("expected image/png got %q", contentType)
	}

	replayed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(replayed, payload) {
		t.Fatalf("replayed content does not match original (%d vs %d bytes)", len(replayed), len(payload))
	}
}

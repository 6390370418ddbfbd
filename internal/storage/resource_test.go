package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name  string
		rawID string
		want  string
	}{
		{"bare handle gets prefixed", "abc123.pdf", "documents/abc123.pdf"},
		{"already namespaced stays unchanged", "documents/abc123.pdf", "documents/abc123.pdf"},
		{"foreign namespace stays unchanged", "legacy/abc123.pdf", "legacy/abc123.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeID(tt.rawID, "documents"))
		})
	}
}

func TestNormalizeID_Idempotent(t *testing.T) {
	for _, raw := range []string{"x", "x.pdf", "documents/x.pdf", "a/b/c", ""} {
		once := NormalizeID(raw, "documents")
		assert.Equal(t, once, NormalizeID(once, "documents"), "raw=%q", raw)
	}
}

func TestClassifyResource(t *testing.T) {
	tests := []struct {
		mimeType string
		want     ResourceClass
	}{
		{"image/png", ResourceImage},
		{"image/jpeg", ResourceImage},
		{"video/mp4", ResourceVideo},
		{"application/pdf", ResourceGeneric},
		{"text/plain", ResourceGeneric},
		// Absent MIME type maps to the generic binary class.
		{"", ResourceGeneric},
		{"imagepng", ResourceGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyResource(tt.mimeType))
		})
	}
}

func TestAccessURL(t *testing.T) {
	t.Run("plain url", func(t *testing.T) {
		got := accessURL("minio.local:9000", "organizer", "documents/abc.pdf", "")
		assert.Equal(t, "https://minio.local:9000/organizer/documents/abc.pdf", got)
	})

	t.Run("always https", func(t *testing.T) {
		got := accessURL("minio.local:9000", "organizer", "documents/abc.pdf", "")
		assert.Contains(t, got, "https://")
	})

	t.Run("forced download name", func(t *testing.T) {
		got := accessURL("minio.local:9000", "organizer", "documents/abc.pdf", "passport.pdf")
		assert.Contains(t, got, "response-content-disposition=")
		assert.Contains(t, got, "passport.pdf")
	})
}

package delivery

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDeliverer_Fetch(t *testing.T) {
	d := NewHTTPDeliverer()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF-1.4 content"))
		}))
		defer srv.Close()

		res, err := d.Fetch(ctx, srv.URL)
		require.NoError(t, err)
		defer res.Content.Close()

		assert.Equal(t, "application/pdf", res.ContentType)
		body, err := io.ReadAll(res.Content)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 content", string(body))
	})

	t.Run("missing upstream content type falls back to binary", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header()["Content-Type"] = nil
			w.Write([]byte("raw"))
		}))
		defer srv.Close()

		res, err := d.Fetch(ctx, srv.URL)
		require.NoError(t, err)
		defer res.Content.Close()
		assert.Equal(t, FallbackContentType, res.ContentType)
	})

	t.Run("upstream error status is a delivery failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		res, err := d.Fetch(ctx, srv.URL)
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		res, err := d.Fetch(ctx, "http://127.0.0.1:1/blob")
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestAttachmentDisposition(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "report.pdf", `attachment; filename=report.pdf`},
		{"spaces quoted", "my report.pdf", `attachment; filename="my report.pdf"`},
		{"header injection stripped", "evil\r\nX-Hack: 1.pdf", `attachment; filename="evilX-Hack: 1.pdf"`},
		{"path separators neutralized", "../../etc/passwd", `attachment; filename=.._.._etc_passwd`},
		{"empty falls back", "", `attachment; filename=download`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttachmentDisposition(tt.filename))
		})
	}
}

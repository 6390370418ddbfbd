package delivery

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// FallbackContentType is used when neither the record nor upstream reports a type.
const FallbackContentType = "application/octet-stream"

// Result is a single upstream fetch ready to be streamed to the client.
// Content must be closed by the caller.
type Result struct {
	Content       io.ReadCloser
	ContentType   string
	ContentLength int64
}

// Deliverer fetches blob content from a resolved storage URL.
type Deliverer interface {
	Fetch(ctx context.Context, rawURL string) (*Result, error)
}

// HTTPDeliverer performs plain HTTP fetches against the blob store. The request
// is bound to the caller's context so a client disconnect aborts the upstream
// transfer instead of leaking it.
type HTTPDeliverer struct {
	client *http.Client
}

// NewHTTPDeliverer creates a Deliverer with an instrumented transport.
func NewHTTPDeliverer() *HTTPDeliverer {
	return &HTTPDeliverer{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Fetch performs one upstream GET. Any non-OK upstream response is a delivery
// failure, never a silent substitute for missing content.
func (d *HTTPDeliverer) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch upstream content: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("upstream responded with status %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = FallbackContentType
	}
	return &Result{
		Content:       resp.Body,
		ContentType:   ct,
		ContentLength: resp.ContentLength,
	}, nil
}

// AttachmentDisposition builds a Content-Disposition header value that forces a
// download under the given filename. The name is sanitized so it cannot break
// out of the header.
func AttachmentDisposition(filename string) string {
	name := sanitizeFilename(filename)
	if name == "" {
		name = "download"
	}
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}

func sanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	// Path separators would let upstream names masquerade as paths.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return strings.TrimSpace(name)
}

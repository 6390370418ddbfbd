package storage

import "strings"

// NamespaceSeparator joins the configured namespace prefix with object names.
const NamespaceSeparator = "/"

// ResourceClass is the blob backend's categorization of content. It is decided
// once at upload time, persisted on the record, and never recomputed, so the
// class used to remove an object always matches the class used to store it.
type ResourceClass string

const (
	ResourceImage   ResourceClass = "image"
	ResourceVideo   ResourceClass = "video"
	ResourceGeneric ResourceClass = "generic"
)

// NormalizeID maps a raw storage handle to its canonical namespaced form.
// Handles already carrying the separator are returned unchanged, which makes
// the function idempotent: NormalizeID(NormalizeID(x)) == NormalizeID(x).
func NormalizeID(rawID, namespace string) string {
	if strings.Contains(rawID, NamespaceSeparator) {
		return rawID
	}
	return namespace + NamespaceSeparator + rawID
}

// ClassifyResource maps a MIME type to the storage class used for it.
// Anything that is not an image or a video, including an absent MIME type,
// is stored as a generic binary.
func ClassifyResource(mimeType string) ResourceClass {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return ResourceImage
	case strings.HasPrefix(mimeType, "video/"):
		return ResourceVideo
	default:
		return ResourceGeneric
	}
}

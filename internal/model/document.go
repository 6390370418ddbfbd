package model

import "time"

// Category is the fixed classification a user assigns to a document.
type Category string

const (
	CategoryBusiness       Category = "business"
	CategoryHealth         Category = "health"
	CategoryEducation      Category = "education"
	CategoryIdentification Category = "identification"
	CategoryFinance        Category = "finance"
	CategoryOther          Category = "other"
)

// ParseCategory maps raw input to a known category.
// Unknown or empty values fall back to CategoryOther, matching the schema default.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryBusiness, CategoryHealth, CategoryEducation, CategoryIdentification, CategoryFinance:
		return Category(raw)
	default:
		return CategoryOther
	}
}

// Document represents a stored file in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// Records are immutable after creation except for deletion.
type Document struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`

	// StorageID is the canonical namespaced handle into the blob store. A record
	// with a non-empty StorageID always carries StorageURL and ResourceClass too.
	StorageID     string `json:"storage_id"`
	StorageURL    string `json:"storage_url"`
	ResourceClass string `json:"resource_class"`

	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`

	// LocalReference survives only on records created before blob storage was
	// adopted. Such records have no StorageID and are never downloadable.
	LocalReference string `json:"local_reference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Downloadable reports whether the record references blob-store content.
func (d *Document) Downloadable() bool {
	return d.StorageID != ""
}

package repository

import (
	"context"

	"github.com/Tazrian08/Organizer/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record. The caller provides all required
	// fields; blob-referencing records arrive fully populated or not at all.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByOwner returns all documents of one owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error)

	// Search returns documents whose original name or description contains the
	// query, case-insensitively, across all owners.
	Search(ctx context.Context, query string) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

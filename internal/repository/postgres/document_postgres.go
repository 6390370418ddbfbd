package postgres

import (
	"context"
	"database/sql"

	"github.com/Tazrian08/Organizer/internal/model"
	"github.com/Tazrian08/Organizer/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, owner_id, title, category, description, storage_id, storage_url, resource_class, original_name, mime_type, size, local_reference, created_at`

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, owner_id, title, category, description, storage_id, storage_url, resource_class, original_name, mime_type, size, local_reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.OwnerID,
		doc.Title,
		string(doc.Category),
		doc.Description,
		doc.StorageID,
		doc.StorageURL,
		doc.ResourceClass,
		doc.OriginalName,
		doc.MimeType,
		doc.Size,
		doc.LocalReference,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByOwner returns all of one owner's documents, newest first.
func (r *DocumentPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

// Search matches the query as a case-insensitive substring of original_name or
// description. The filter deliberately has no owner clause; see the service tests.
func (r *DocumentPostgres) Search(ctx context.Context, query string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE original_name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, query)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Ignore rows affected; a missing row is not a persistence failure.
	_, _ = res.RowsAffected()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var (
		d        model.Document
		category string
		localRef sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Title,
		&category,
		&d.Description,
		&d.StorageID,
		&d.StorageURL,
		&d.ResourceClass,
		&d.OriginalName,
		&d.MimeType,
		&d.Size,
		&localRef,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Category = model.Category(category)
	d.LocalReference = localRef.String
	return &d, nil
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

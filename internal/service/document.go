package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tazrian08/Organizer/internal/auth"
	"github.com/Tazrian08/Organizer/internal/delivery"
	"github.com/Tazrian08/Organizer/internal/model"
	"github.com/Tazrian08/Organizer/internal/repository"
	"github.com/Tazrian08/Organizer/internal/storage"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("document not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrFileRequired       = errors.New("file is required")
	ErrForbidden          = errors.New("not authorized to access this document")
	ErrContentUnavailable = errors.New("file not available")
	ErrUpstreamStorage    = errors.New("blob store write failed")
	ErrUpstreamDelivery   = errors.New("blob content fetch failed")
)

// UploadInput carries everything needed to create a document.
type UploadInput struct {
	Title       string
	Category    string
	Description string

	Content      io.Reader
	OriginalName string
	MimeType     string
	Size         int64
}

// DownloadResult is a ready-to-stream attachment. Content must be closed by
// the caller.
type DownloadResult struct {
	Filename      string
	ContentType   string
	ContentLength int64
	Content       io.ReadCloser
}

// DocumentService defines the document lifecycle use cases. Every operation
// takes the authenticated identity; the owner-or-admin check is applied
// uniformly through auth.CanAccess.
type DocumentService interface {
	// List returns the documents of the effective owner, newest first. Only an
	// admin may list another user's documents via targetOwner.
	List(ctx context.Context, identity model.Identity, targetOwner string) ([]model.Document, error)

	// Upload validates input, writes the blob, then persists a fully populated
	// metadata record. A blob-store failure creates no metadata row.
	Upload(ctx context.Context, identity model.Identity, in UploadInput) (*model.Document, error)

	// Download resolves the record's storage URL and fetches the content
	// through the delivery proxy.
	Download(ctx context.Context, identity model.Identity, documentID string) (*DownloadResult, error)

	// ResolveDownloadURL authorizes the download and returns the resolved blob
	// URL without fetching it. Used by the redirect download mode.
	ResolveDownloadURL(ctx context.Context, identity model.Identity, documentID string) (string, error)

	// Delete removes the metadata row unconditionally; blob removal is best
	// effort and never fails the operation.
	Delete(ctx context.Context, identity model.Identity, documentID string) error

	// Search matches the query against original names and descriptions across
	// all owners (reference behavior, unscoped).
	Search(ctx context.Context, identity model.Identity, query string) ([]model.Document, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store     storage.BlobStore
	repo      repository.DocumentRepository
	deliverer delivery.Deliverer
	namespace string
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.BlobStore, repo repository.DocumentRepository, deliverer delivery.Deliverer, namespace string) DocumentService {
	return &documentService{store: store, repo: repo, deliverer: deliverer, namespace: namespace}
}

func (s *documentService) List(ctx context.Context, identity model.Identity, targetOwner string) ([]model.Document, error) {
	owner := auth.EffectiveOwner(identity, targetOwner)
	return s.repo.ListByOwner(ctx, owner)
}

func (s *documentService) Upload(ctx context.Context, identity model.Identity, in UploadInput) (*model.Document, error) {
	// Validate before touching the blob store so a rejected upload never
	// writes a blob that nothing will reference.
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if in.Content == nil {
		return nil, ErrFileRequired
	}

	class := storage.ClassifyResource(in.MimeType)

	res, err := s.store.Store(ctx, in.Content, storage.StoreHints{
		Size:         in.Size,
		ContentType:  in.MimeType,
		Class:        class,
		OriginalName: in.OriginalName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamStorage, err)
	}

	doc := &model.Document{
		ID:            uuid.New().String(),
		OwnerID:       identity.ID,
		Title:         title,
		Category:      model.ParseCategory(in.Category),
		Description:   strings.TrimSpace(in.Description),
		StorageID:     storage.NormalizeID(res.StorageID, s.namespace),
		StorageURL:    res.StorageURL,
		ResourceClass: string(class),
		OriginalName:  in.OriginalName,
		MimeType:      in.MimeType,
		Size:          in.Size,
		CreatedAt:     time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// The blob was written but the record was not. Reclaim the blob best
		// effort; a leftover one is recoverable by out-of-band cleanup.
		if _, delErr := s.store.Remove(ctx, doc.StorageID, class); delErr != nil {
			logBestEffort("upload_rollback_failed", map[string]any{
				"storage_id": doc.StorageID,
				"error":      delErr.Error(),
			})
		}
		return nil, fmt.Errorf("save document metadata: %w", err)
	}
	return stored, nil
}

func (s *documentService) Download(ctx context.Context, identity model.Identity, documentID string) (*DownloadResult, error) {
	doc, rawURL, err := s.resolveDownload(ctx, identity, documentID)
	if err != nil {
		return nil, err
	}

	fetched, err := s.deliverer.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDelivery, err)
	}

	contentType := doc.MimeType
	if contentType == "" {
		contentType = fetched.ContentType
	}
	return &DownloadResult{
		Filename:      doc.OriginalName,
		ContentType:   contentType,
		ContentLength: fetched.ContentLength,
		Content:       fetched.Content,
	}, nil
}

func (s *documentService) ResolveDownloadURL(ctx context.Context, identity model.Identity, documentID string) (string, error) {
	_, rawURL, err := s.resolveDownload(ctx, identity, documentID)
	return rawURL, err
}

func (s *documentService) Delete(ctx context.Context, identity model.Identity, documentID string) error {
	doc, err := s.authorized(ctx, identity, documentID)
	if err != nil {
		return err
	}

	// Blob cleanup is best effort: an already-absent object counts as removed,
	// and a hard transport error is logged without aborting. The metadata row
	// removal below is the authoritative step.
	if doc.StorageID != "" {
		if _, remErr := s.store.Remove(ctx, doc.StorageID, storage.ResourceClass(doc.ResourceClass)); remErr != nil {
			logBestEffort("blob_remove_failed", map[string]any{
				"document_id": doc.ID,
				"storage_id":  doc.StorageID,
				"error":       remErr.Error(),
			})
		}
	}

	return s.repo.Delete(ctx, doc.ID)
}

func (s *documentService) Search(ctx context.Context, identity model.Identity, query string) ([]model.Document, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

// authorized loads the record and applies the owner-or-admin gate.
func (s *documentService) authorized(ctx context.Context, identity model.Identity, documentID string) (*model.Document, error) {
	if documentID == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !auth.CanAccess(identity, doc.OwnerID) {
		return nil, ErrForbidden
	}
	return doc, nil
}

// resolveDownload authorizes the request and resolves the blob URL. The stored
// URL wins; BuildAccessURL is only a fallback for records missing it.
func (s *documentService) resolveDownload(ctx context.Context, identity model.Identity, documentID string) (*model.Document, string, error) {
	doc, err := s.authorized(ctx, identity, documentID)
	if err != nil {
		return nil, "", err
	}
	if !doc.Downloadable() {
		// Legacy records without a storage handle are terminally unavailable.
		return nil, "", ErrContentUnavailable
	}
	rawURL := doc.StorageURL
	if rawURL == "" {
		rawURL = s.store.BuildAccessURL(doc.StorageID, storage.ResourceClass(doc.ResourceClass), doc.OriginalName)
	}
	return doc, rawURL, nil
}

func logBestEffort(event string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": "warn",
		"event": event,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}

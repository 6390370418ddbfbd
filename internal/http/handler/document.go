package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Tazrian08/Organizer/internal/config"
	"github.com/Tazrian08/Organizer/internal/delivery"
	"github.com/Tazrian08/Organizer/internal/http/middleware"
	"github.com/Tazrian08/Organizer/internal/service"
)

// Handlers are normally mounted behind RequireAuth, which guarantees an
// identity in locals. Each handler still checks so that a misconfigured mount
// fails closed with a 401 instead of serving as an anonymous caller.

// ListDocuments returns the effective owner's documents, newest first.
// An admin may pass ?user=<id> to view another user's documents; for everyone
// else the filter is ignored.
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		docs, err := docSvc.List(c.UserContext(), identity, c.Query("user"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// UploadDocument accepts multipart/form-data with fields: file, title,
// category, description.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := docSvc.Upload(c.UserContext(), identity, service.UploadInput{
			Title:        c.FormValue("title"),
			Category:     c.FormValue("category"),
			Description:  c.FormValue("description"),
			Content:      f,
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			Size:         fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// DownloadDocument streams the document content as a forced attachment.
// In redirect mode the client is sent to the resolved blob URL instead of
// proxying the bytes; the authorization path is identical.
func DownloadDocument(docSvc service.DocumentService, downloadMode string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if downloadMode == config.DownloadModeRedirect {
			rawURL, err := docSvc.ResolveDownloadURL(c.UserContext(), identity, id)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.Redirect(rawURL, fiber.StatusFound)
		}

		res, err := docSvc.Download(c.UserContext(), identity, id)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, res.ContentType)
		c.Set(fiber.HeaderContentDisposition, delivery.AttachmentDisposition(res.Filename))
		if res.ContentLength > 0 {
			return c.SendStream(res.Content, int(res.ContentLength))
		}
		return c.SendStream(res.Content)
	}
}

// DeleteDocument removes the record; blob cleanup inside the service is best
// effort and never changes the acknowledgement.
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := docSvc.Delete(c.UserContext(), identity, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Document deleted"})
	}
}

// SearchDocuments matches ?query= against original names and descriptions.
func SearchDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}

		docs, err := docSvc.Search(c.UserContext(), identity, c.Query("query"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

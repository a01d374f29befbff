package handler

import (
	"mime"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pdfshare/internal/http/middleware"
	"pdfshare/internal/service"
)

type uploadResponse struct {
	Message string `json:"message"`
	FileID  string `json:"file_id"`
}

type shareRequest struct {
	FileID    string `json:"file_id" form:"file_id"`
	ShareWith string `json:"share_with" form:"share_with"`
}

// fileIDParam validates the :file_id route parameter.
func fileIDParam(c *fiber.Ctx) (string, bool) {
	id := c.Params("file_id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// UploadDocument godoc
// @Summary Upload a PDF
// @Tags pdf
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF document"
// @Success 201 {object} uploadResponse
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /pdf/upload [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), middleware.Principal(c), f, fh.Filename, fh.Size)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(uploadResponse{Message: "PDF uploaded", FileID: doc.ID})
	}
}

// ListDocuments godoc
// @Summary List documents owned by or shared with the caller
// @Tags pdf
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DocumentSummary
// @Failure 401 {object} errorPayload
// @Router /pdf/list [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), middleware.Principal(c))
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

// ShareDocument godoc
// @Summary Grant another user read access
// @Tags pdf
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body shareRequest true "Grant"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pdf/share [post]
func ShareDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req shareRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.FileID); err != nil {
			return invalidID(c)
		}
		if err := svc.Share(c.UserContext(), middleware.Principal(c), req.FileID, req.ShareWith); err != nil {
			return err
		}
		return c.JSON(messageResponse{Message: "PDF shared"})
	}
}

// ShareLink godoc
// @Summary Get the shareable link of an owned document
// @Tags pdf
// @Produce json
// @Security BearerAuth
// @Param file_id path string true "Document ID"
// @Success 200 {object} service.ShareLink
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pdf/link/{file_id} [get]
func ShareLink(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := fileIDParam(c)
		if !ok {
			return invalidID(c)
		}
		link, err := svc.ShareLink(c.UserContext(), middleware.Principal(c), id)
		if err != nil {
			return err
		}
		if strings.HasPrefix(link.URL, "/") {
			link.URL = c.BaseURL() + link.URL
		}
		return c.JSON(link)
	}
}

// ViewDocument godoc
// @Summary Stream a readable document
// @Tags pdf
// @Produce application/pdf
// @Security BearerAuth
// @Param file_id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pdf/view/{file_id} [get]
func ViewDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := fileIDParam(c)
		if !ok {
			return invalidID(c)
		}
		content, err := svc.View(c.UserContext(), middleware.Principal(c), id)
		if err != nil {
			return err
		}
		return sendContent(c, content)
	}
}

// ViewShared godoc
// @Summary Stream a document through its shared link
// @Description Authorization depends on SHARED_LINK_MODE: authenticated, public or disabled.
// @Tags pdf
// @Produce application/pdf
// @Param file_id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /pdf/shared/{file_id} [get]
func ViewShared(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := fileIDParam(c)
		if !ok {
			return invalidID(c)
		}
		content, err := svc.ViewShared(c.UserContext(), middleware.Principal(c), id)
		if err != nil {
			return err
		}
		return sendContent(c, content)
	}
}

// DeleteDocument godoc
// @Summary Delete an owned document with its content and comments
// @Tags pdf
// @Produce json
// @Security BearerAuth
// @Param file_id path string true "Document ID"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pdf/delete/{file_id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := fileIDParam(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), middleware.Principal(c), id); err != nil {
			return err
		}
		return c.JSON(messageResponse{Message: "PDF deleted"})
	}
}

// sendContent streams the document inline. The body is closed by fasthttp once sent.
func sendContent(c *fiber.Ctx, content *service.Content) error {
	c.Set(fiber.HeaderContentType, content.ContentType)
	if d := mime.FormatMediaType("inline", map[string]string{"filename": content.Document.Filename}); d != "" {
		c.Set(fiber.HeaderContentDisposition, d)
	} else {
		c.Set(fiber.HeaderContentDisposition, "inline")
	}
	size := int(content.Size)
	if size <= 0 {
		size = -1
	}
	return c.SendStream(content.Body, size)
}

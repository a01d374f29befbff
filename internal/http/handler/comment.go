package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pdfshare/internal/http/middleware"
	"pdfshare/internal/service"
)

// AddComment godoc
// @Summary Comment on a readable document
// @Tags pdf
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param file_id formData string true "Document ID"
// @Param text formData string true "Comment text"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pdf/comment [post]
func AddComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileID := c.FormValue("file_id")
		if _, err := uuid.Parse(fileID); err != nil {
			return invalidID(c)
		}
		comment, err := svc.Add(c.UserContext(), middleware.Principal(c), fileID, c.FormValue("text"))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}

// ListComments godoc
// @Summary List the comments of a readable document, oldest first
// @Tags pdf
// @Produce json
// @Security BearerAuth
// @Param file_id path string true "Document ID"
// @Success 200 {array} model.Comment
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /pdf/comments/{file_id} [get]
func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := fileIDParam(c)
		if !ok {
			return invalidID(c)
		}
		items, err := svc.List(c.UserContext(), middleware.Principal(c), id)
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"pdfshare/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signupRequest true "Account"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Router /auth/signup [post]
func Signup(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signupRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := svc.Register(c.UserContext(), req.Name, req.Email, req.Password); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: "User registered"})
	}
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} service.Token
// @Failure 401 {object} errorPayload
// @Router /auth/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		tok, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(tok)
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"pdfshare/internal/http/middleware"
	"pdfshare/internal/service"
)

// Deps are the collaborators the routes are bound to.
type Deps struct {
	// DB is nil when the registry does not live in a database.
	DB        Pinger
	Auth      middleware.Authenticator
	Users     service.AuthService
	Documents service.DocumentService
	Comments  service.CommentService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {

	app.Get("/", Welcome())
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", Signup(d.Users))
	authGroup.Post("/login", Login(d.Users))

	requireAuth := middleware.RequireAuth(d.Auth)

	pdf := app.Group("/pdf")
	pdf.Post("/upload", requireAuth, UploadDocument(d.Documents))
	pdf.Get("/list", requireAuth, ListDocuments(d.Documents))
	pdf.Post("/comment", requireAuth, AddComment(d.Comments))
	pdf.Get("/comments/:file_id", requireAuth, ListComments(d.Comments))
	pdf.Post("/share", requireAuth, ShareDocument(d.Documents))
	pdf.Get("/link/:file_id", requireAuth, ShareLink(d.Documents))
	pdf.Get("/view/:file_id", requireAuth, ViewDocument(d.Documents))
	pdf.Delete("/delete/:file_id", requireAuth, DeleteDocument(d.Documents))
	pdf.Get("/shared/:file_id", middleware.OptionalAuth(d.Auth), ViewShared(d.Documents))
}

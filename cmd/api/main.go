package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"pdfshare/docs"
	"pdfshare/internal/auth"
	"pdfshare/internal/config"
	"pdfshare/internal/database"
	"pdfshare/internal/database/migration"
	handlers "pdfshare/internal/http/handler"
	"pdfshare/internal/http/middleware"
	"pdfshare/internal/logging"
	"pdfshare/internal/otel"
	"pdfshare/internal/repository"
	"pdfshare/internal/repository/memory"
	"pdfshare/internal/repository/postgres"
	"pdfshare/internal/service"
	"pdfshare/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type registry struct {
	db       *sql.DB
	docs     repository.DocumentRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

// openRegistry builds the repositories for the configured registry backend.
func openRegistry(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (*registry, error) {
	if cfg.RegistryBackend == "memory" {
		log.Warn().Str("registry", "memory").Msg("registry is not persistent")
		return &registry{
			docs:     memory.NewDocumentRepository(),
			comments: memory.NewCommentRepository(),
			users:    memory.NewUserRepository(),
		}, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &registry{
		db:       db,
		docs:     postgres.NewDocumentPostgres(db),
		comments: postgres.NewCommentPostgres(db),
		users:    postgres.NewUserPostgres(db),
	}, nil
}

// @title PDF Share API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracer shutdown")
		}
	}()

	reg, err := openRegistry(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.RegistryBackend).Msg("failed to open registry")
	}
	var dbPinger handlers.Pinger
	if reg.db != nil {
		defer reg.db.Close()
		dbPinger = reg.db
	}

	blobs, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("failed to initialize object storage")
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token manager")
	}

	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register service metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	svcLog := log.With().Str("component", "service").Logger()
	opts := []service.Option{
		service.WithLogger(svcLog),
		service.WithMetrics(metrics),
		service.WithSharedLinkMode(cfg.Documents.SharedLinkMode),
		service.WithShareLinkTTL(cfg.Documents.ShareLinkTTL),
	}
	docSvc := service.NewDocumentService(blobs, reg.docs, reg.comments, opts...)
	commentSvc := service.NewCommentService(reg.docs, reg.comments, opts...)
	authSvc := service.NewAuthService(reg.users, tokens, opts...)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(log),
		BodyLimit:             cfg.Documents.MaxUploadBytes,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.LegacyTokenHeader,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        dbPinger,
		Auth:      tokens,
		Users:     authSvc,
		Documents: docSvc,
		Comments:  commentSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("registry", cfg.RegistryBackend).Str("storage", cfg.Storage.Backend).Msg("listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

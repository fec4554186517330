package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/johnquangdev/meeting-summary/docs"
	"github.com/johnquangdev/meeting-summary/internal/adapter/handler"
	httpmw "github.com/johnquangdev/meeting-summary/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summary/internal/infrastructure/mailer"
	aiuse "github.com/johnquangdev/meeting-summary/internal/usecase/ai"
	emailuse "github.com/johnquangdev/meeting-summary/internal/usecase/email"
	pkgai "github.com/johnquangdev/meeting-summary/pkg/ai"
	"github.com/johnquangdev/meeting-summary/pkg/config"
	"github.com/johnquangdev/meeting-summary/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-summary/pkg/validator"
)

// @title           Meeting Summary API
// @version         1.0
// @description     Upload a meeting transcript, get a Gemini-generated summary with objections and action items, and email it to the team lead.

// @contact.name   API Support
// @contact.email  support@infoquang.id.vn

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(zlog.Named("http"))

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(httpmw.RequestLogger(zlog))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	zlog.Info("🔧 Initializing dependencies...")

	// Analyzer
	if cfg.Gemini.APIKey == "" {
		zlog.Warn("⚠️  GOOGLE_API_KEY is not set; transcript analysis will fail until it is configured")
	}
	gemini := pkgai.NewGeminiClient(&cfg.Gemini)
	aiService, err := aiuse.NewAIService(gemini, zlog.Named("ai"))
	if err != nil {
		return err
	}
	zlog.Info("🤖 Gemini client ready", zap.String("model", gemini.Model()))

	// Email
	if !cfg.Email.Configured() {
		zlog.Warn("⚠️  Email credentials are not configured; /api/v1/email/summary will return 500")
	}
	emailService, err := emailuse.NewEmailService(&cfg.Email, mailer.NewSMTPMailer(&cfg.Email), zlog.Named("email"))
	if err != nil {
		return err
	}

	router := handler.NewRouter(cfg,
		handler.NewTranscript(aiService, zlog.Named("http")),
		handler.NewEmail(emailService, zlog.Named("http")),
	)
	router.Setup(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := cfg.Addr()
		zlog.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("🛑 Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	zlog.Info("✅ Server stopped gracefully")
	return nil
}

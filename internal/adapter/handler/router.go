package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-summary/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summary/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	transcriptHandler *Transcript
	emailHandler      *Email
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, transcriptHandler *Transcript, emailHandler *Email) *Router {
	return &Router{
		cfg:               cfg,
		transcriptHandler: transcriptHandler,
		emailHandler:      emailHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)

	if rt.cfg.Server.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	if rt.cfg.Server.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	v1 := e.Group("/api/v1")
	rt.setupTranscriptRoutes(v1)
	rt.setupEmailRoutes(v1)
}

func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	process := g.Group("/process")

	if rt.transcriptHandler != nil {
		process.POST("/transcript", rt.transcriptHandler.ProcessTranscript)
	} else {
		process.POST("/transcript", rt.notImplemented)
	}
}

func (rt *Router) setupEmailRoutes(g *echo.Group) {
	email := g.Group("/email")

	if rt.emailHandler != nil {
		email.POST("/summary", rt.emailHandler.SendSummary)
	} else {
		email.POST("/summary", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, common.ErrorResponse{
		Detail: "This endpoint is not yet implemented",
	})
}

// root godoc
// @Summary      Liveness message
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.StatusResponse
// @Router       / [get]
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, common.StatusResponse{
		Status: "Google Gemini API backend is running.",
	})
}

// healthCheck godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.StatusResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.StatusResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	})
}

package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summary/errors"
	aiuse "github.com/johnquangdev/meeting-summary/internal/usecase/ai"
)

// TranscriptFormField is the multipart field carrying the transcript
const TranscriptFormField = "file"

// Transcript handles transcript upload and analysis
type Transcript struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewTranscript creates a new transcript handler
func NewTranscript(svc aiuse.Service, logger *zap.Logger) *Transcript {
	return &Transcript{svc: svc, logger: logger}
}

// ProcessTranscript analyzes an uploaded meeting transcript
// @Summary      Analyze a meeting transcript
// @Description  Upload a plain-text transcript and receive a summary, objections and action items
// @Tags         Transcript
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Transcript (.txt, text/plain)"
// @Success      200   {object}  entities.MeetingAnalysis
// @Failure      400   {object}  common.ErrorResponse  "Missing file, wrong type or unreadable text"
// @Failure      500   {object}  common.ErrorResponse  "Failed to analyze transcript with AI model."
// @Router       /api/v1/process/transcript [post]
func (h *Transcript) ProcessTranscript(c echo.Context) error {
	fh, err := c.FormFile(TranscriptFormField)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingFile(TranscriptFormField))
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if err := aiuse.CheckContentType(contentType); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidFileType(contentType))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	transcript, err := aiuse.DecodeTranscript(data)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("transcript received",
		zap.String("request_id", getRequestID(c)),
		zap.String("filename", fh.Filename),
		zap.Int64("size", fh.Size),
	)

	analysis, err := h.svc.Analyze(c.Request().Context(), transcript)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, analysis)
}

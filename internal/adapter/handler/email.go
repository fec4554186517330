package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summary/errors"
	"github.com/johnquangdev/meeting-summary/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summary/internal/domain/entities"
	emailuse "github.com/johnquangdev/meeting-summary/internal/usecase/email"
	"github.com/johnquangdev/meeting-summary/pkg/validator"
)

// Email handles summary email delivery
type Email struct {
	svc    emailuse.Service
	logger *zap.Logger
}

// NewEmail creates a new email handler
func NewEmail(svc emailuse.Service, logger *zap.Logger) *Email {
	return &Email{svc: svc, logger: logger}
}

// SendSummary emails a meeting analysis to the configured receiver
// @Summary      Email a meeting summary
// @Description  Renders the analysis as HTML and sends it over SMTP to the configured receiver
// @Tags         Email
// @Accept       json
// @Produce      json
// @Param        request  body      entities.MeetingAnalysis  true  "Analysis to send"
// @Success      200      {object}  common.MessageResponse
// @Failure      400      {object}  common.ErrorResponse  "Malformed or incomplete analysis"
// @Failure      500      {object}  common.ErrorResponse  "Credentials missing or SMTP failure"
// @Router       /api/v1/email/summary [post]
func (h *Email) SendSummary(c echo.Context) error {
	var analysis entities.MeetingAnalysis
	if err := c.Bind(&analysis); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload("request body must be a meeting analysis object"))
	}
	if err := c.Validate(&analysis); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(validator.Describe(err)))
	}

	if err := h.svc.SendSummary(c.Request().Context(), &analysis); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.MessageResponse{Message: "Email sent successfully!"})
}

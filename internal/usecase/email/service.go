package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summary/internal/domain/entities"
	"github.com/johnquangdev/meeting-summary/internal/infrastructure/metrics"
	uerrors "github.com/johnquangdev/meeting-summary/internal/usecase/errors"
	"github.com/johnquangdev/meeting-summary/pkg/config"
)

// Sender delivers a composed message. *mailer.SMTPMailer satisfies it.
type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// Service defines summary email delivery
type Service interface {
	SendSummary(ctx context.Context, analysis *entities.MeetingAnalysis) error
}

type emailService struct {
	cfg    *config.EmailConfig
	sender Sender
	logger *zap.Logger
}

// NewEmailService constructs a new email service
func NewEmailService(cfg *config.EmailConfig, sender Sender, logger *zap.Logger) (Service, error) {
	if cfg == nil {
		return nil, errors.New("email: config must not be nil")
	}
	if sender == nil {
		return nil, errors.New("email: sender must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &emailService{cfg: cfg, sender: sender, logger: logger}, nil
}

// SendSummary emails the analysis to the configured receiver. It returns
// ErrEmailNotConfigured when any credential is missing and a
// *DeliveryError for failures while composing or sending the message.
func (s *emailService) SendSummary(ctx context.Context, analysis *entities.MeetingAnalysis) error {
	if !s.cfg.Configured() {
		metrics.RecordEmail(metrics.EmailStatusNotConfigured)
		s.logger.Warn("email credentials are not configured")
		return uerrors.ErrEmailNotConfigured
	}

	body, err := RenderSummaryHTML(analysis)
	if err != nil {
		metrics.RecordEmail(metrics.EmailStatusError)
		return err
	}

	msg, err := s.compose(body)
	if err != nil {
		return s.fail(err)
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return s.fail(err)
	}

	metrics.RecordEmail(metrics.EmailStatusSuccess)
	s.logger.Info("📧 Summary email sent",
		zap.String("smtp_host", s.cfg.SMTPHost),
		zap.Int("objections", len(analysis.Objections)),
		zap.Int("action_items", len(analysis.ActionItems)),
	)
	return nil
}

func (s *emailService) compose(htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.SenderEmail); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(s.cfg.ReceiverEmail); err != nil {
		return nil, fmt.Errorf("invalid receiver address: %w", err)
	}
	msg.Subject(s.cfg.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	return msg, nil
}

func (s *emailService) fail(err error) error {
	metrics.RecordEmail(metrics.EmailStatusError)
	s.logger.Error("❌ Failed to send summary email",
		zap.String("smtp_host", s.cfg.SMTPHost),
		zap.Int("smtp_port", s.cfg.SMTPPort),
		zap.Error(err),
	)
	return &uerrors.DeliveryError{Cause: err}
}

package mailer

import (
	"context"
	"log/slog"

	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase/shared"

	"github.com/google/uuid"
)

// LogMailer records digests in the log instead of sending them. Used for
// local runs and the default configuration.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg shared.Message) (string, error) {
	id := "log-" + uuid.NewString()
	m.logger.Info("digest email (log driver)",
		"delivery_id", id,
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return id, nil
}

// New picks the mailer for the configured driver.
func New(cfg config.MailConfig, logger *slog.Logger) shared.Mailer {
	if cfg.Driver == config.MailDriverSMTP {
		return NewSMTPMailer(cfg)
	}
	return NewLogMailer(logger)
}

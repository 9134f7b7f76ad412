package mailer

import (
	"context"
	"fmt"
	"strings"

	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase/shared"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

// SMTPMailer sends digests through an SMTP relay. The generated Message-ID
// doubles as the delivery id.
type SMTPMailer struct {
	dialer *mail.Dialer
	from   string
	domain string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	d.Timeout = cfg.SMTPTimeout
	d.StartTLSPolicy = mail.OpportunisticStartTLS
	return &SMTPMailer{
		dialer: d,
		from:   cfg.From,
		domain: senderDomain(cfg.From, cfg.SMTPHost),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg shared.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.domain)

	message := mail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetAddressHeader("To", msg.To, msg.ToName)
	message.SetHeader("Subject", msg.Subject)
	message.SetHeader("Message-ID", messageID)
	message.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(message); err != nil {
		return "", fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return messageID, nil
}

func senderDomain(from, fallback string) string {
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		return strings.TrimSuffix(from[i+1:], ">")
	}
	return fallback
}

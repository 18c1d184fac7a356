package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// EmailConfig holds SMTP delivery settings. Email notifications are an
// opt-in extra: with an empty config the sender stays a no-op.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string

	// RetryMaxElapsed caps the total time spent retrying one delivery.
	// Zero keeps the backoff default.
	RetryMaxElapsed time.Duration
}

// Configured reports whether enough fields are set to attempt delivery.
func (c EmailConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.From != "" && c.To != ""
}

// EmailSender delivers reminder emails over SMTP, retrying transient
// failures with exponential backoff.
type EmailSender struct {
	cfg EmailConfig
	log logging.Logger

	// test seam for smtp.SendMail
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailSender(cfg EmailConfig, log logging.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, log: log, send: smtp.SendMail}
}

// Configured proxies the config check for callers deciding whether to offer
// email delivery at all.
func (s *EmailSender) Configured() bool {
	return s.cfg.Configured()
}

// SendReminder sends one reminder email. Returns false without error when
// the sender is not configured (mirroring the silent skip of unsupported
// platform capabilities).
func (s *EmailSender) SendReminder(ctx context.Context, subject, message string) (bool, error) {
	if !s.cfg.Configured() {
		s.log.Warn(ctx, "email notifications are not configured, skipping", "subject", subject)
		return false, nil
	}

	msg := buildMessage(s.cfg.From, s.cfg.To, subject, message)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	op := func() error {
		return s.send(addr, auth, s.cfg.From, []string{s.cfg.To}, msg)
	}
	exp := backoff.NewExponentialBackOff()
	if s.cfg.RetryMaxElapsed > 0 {
		exp.MaxElapsedTime = s.cfg.RetryMaxElapsed
	}
	b := backoff.WithContext(backoff.WithMaxRetries(exp, 3), ctx)

	if err := backoff.Retry(op, b); err != nil {
		return false, fmt.Errorf("failed to send reminder email: %w", err)
	}

	s.log.Info(ctx, "reminder email sent", "to", s.cfg.To, "subject", subject)
	return true, nil
}

func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}

// internal/app/system/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Email is one outbound message with paired text and HTML bodies.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers account emails. The SMTP transport is the default; tests
// swap in a recording fake.
type Sender interface {
	Send(e Email) error
}

// SMTPConfig carries the transport settings loaded from app config.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// SMTPSender sends mail over plain SMTP (Mailpit locally, SES or similar in
// production).
type SMTPSender struct {
	cfg SMTPConfig
	log *zap.Logger
}

// NewSMTPSender builds the default Sender.
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: logger}
}

// Send delivers the message. Delivery failures are returned to the caller;
// createUser surfaces them as a 500.
func (s *SMTPSender) Send(e Email) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	msg := s.build(e)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{e.To}, msg); err != nil {
		s.log.Error("smtp send failed",
			zap.String("to", e.To),
			zap.String("subject", e.Subject),
			zap.Error(err))
		return err
	}
	s.log.Info("email sent", zap.String("to", e.To), zap.String("subject", e.Subject))
	return nil
}

// build assembles a multipart/alternative message with text and HTML parts.
func (s *SMTPSender) build(e Email) []byte {
	boundary := "=_cedhub_" + uuid.New().String()

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", e.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", e.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@cedhub>\r\n", uuid.New().String())
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(e.TextBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(e.HTMLBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

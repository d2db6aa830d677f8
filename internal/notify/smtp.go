// Package notify emails the site owner about new contact submissions.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pooja2309/portfolio/internal/contact"
)

// Config holds SMTP settings.
type Config struct {
	Host string // e.g. "smtp.gmail.com"
	Port string // e.g. "587"
	User string
	Pass string // app password
	To   string // where notifications are delivered
}

// Enabled reports whether credentials are present.
func (c Config) Enabled() bool {
	return c.User != "" && c.Pass != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends one plain-text email per submission.
type SMTP struct {
	cfg  Config
	send sendFunc
}

// NewSMTP returns an SMTP notifier. Host, port and recipient fall back to
// defaults when empty.
func NewSMTP(cfg Config) *SMTP {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTP{cfg: cfg, send: smtp.SendMail}
}

// NotifySubmission emails the owner with Reply-To set to the sender.
// net/smtp has no context support; ctx is only checked before dialing.
func (s *SMTP) NotifySubmission(ctx context.Context, sub *contact.Submission) error {
	if !s.cfg.Enabled() {
		return errors.New("notify: SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := BuildMessage(s.cfg.User, s.cfg.To, sub)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := s.send(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("notify: sending email for %s: %w", sub.ID, err)
	}
	return nil
}

// BuildMessage renders the notification email including headers.
func BuildMessage(from, to string, sub *contact.Submission) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Received: %s
Message:
%s

---
Sent from your portfolio contact form (submission %s)
`, sub.Name, sub.Email, sub.Subject, sub.CreatedAt.Format("Jan 2, 2006 15:04 MST"), sub.Message, sub.ID)

	var b strings.Builder
	b.WriteString("To: " + header(to) + "\r\n")
	b.WriteString("Subject: " + header("Portfolio Contact: "+sub.Subject+" ("+sub.Name+")") + "\r\n")
	b.WriteString("From: " + header(from) + "\r\n")
	b.WriteString("Reply-To: " + header(sub.Email) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// header strips CR and LF so visitor input cannot inject headers.
func header(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

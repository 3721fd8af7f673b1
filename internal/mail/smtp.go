// Package mail delivers outbound email over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/Guyuepp/portfolio-cms/domain"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
}

type SMTPMailer struct {
	cfg    Config
	dialer net.Dialer
}

var _ domain.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPMailer{cfg: cfg, dialer: net.Dialer{Timeout: 10 * time.Second}}
}

// Send dials the server, upgrades with STARTTLS when offered and delivers e
func (m *SMTPMailer) Send(ctx context.Context, e domain.Email) error {
	conn, err := m.dialer.DialContext(ctx, "tcp", net.JoinHostPort(m.cfg.Host, m.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("starttls failed: %w", err)
		}
	}
	if m.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err = c.Mail(e.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = c.Rcpt(e.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(BuildMessage(e)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return c.Quit()
}

// header values must not carry line breaks
func headerValue(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}

// BuildMessage renders e as an HTML message with RFC 5322 headers
func BuildMessage(e domain.Email) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(e.From))
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(e.To))
	if e.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", headerValue(e.ReplyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", headerValue(e.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(e.Body, "\n", "\r\n"))
	return b.Bytes()
}

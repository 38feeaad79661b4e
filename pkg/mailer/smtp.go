package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"review-catalog/pkg/utils"

	"go.uber.org/zap"
)

type SMTPMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := m.send(ctx, to, subject, body); err != nil {
		m.log.Error("Failed to send mail",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Info("Mail sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// send speaks SMTP over a connection bound to ctx. smtp.SendMail carries no
// deadline, so the dial and the whole exchange are bounded here instead.
func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(m.config.Host, fmt.Sprintf("%d", m.config.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if m.config.User != "" {
		auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(m.buildMessage(to, subject, body))); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	return client.Quit()
}

func (m *SMTPMailer) buildMessage(to, subject, body string) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	return msg.String()
}

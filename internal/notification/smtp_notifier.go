package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (c SMTPConfig) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier delivers plain-text mail through a relay.
type SMTPNotifier struct {
	cfg      SMTPConfig
	auth     smtp.Auth
	sendMail sendMailFunc
	now      func() time.Time
	logger   *zap.Logger
}

func NewSMTPNotifier(cfg SMTPConfig, logger ...*zap.Logger) *SMTPNotifier {
	l := zap.L().Named("notification.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.smtp")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPNotifier{
		cfg:      cfg,
		auth:     auth,
		sendMail: smtp.SendMail,
		now:      time.Now,
		logger:   l,
	}
}

func (n *SMTPNotifier) SendNotification(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := n.buildMessage(to, subject, body)
	if err := n.sendMail(n.cfg.addr(), n.auth, n.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	n.logger.Debug("smtp notification sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (n *SMTPNotifier) buildMessage(to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + n.cfg.From + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + n.now().UTC().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"os"

	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned when SMTP credentials are missing from the
// environment
var ErrNotConfigured = errors.New("SMTP credentials are not configured")

// Mailer sends transactional email over SMTP
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewFromEnv builds a Mailer from SMTP_* environment variables
func NewFromEnv() *Mailer {
	return &Mailer{
		host:     getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     getEnvWithDefault("SMTP_PORT", "465"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_USERNAME"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Send delivers a single HTML email
func (m *Mailer) Send(to, subject, html string) error {
	if m.username == "" || m.password == "" {
		return ErrNotConfigured
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.from, to, subject, html,
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		logrus.WithError(err).WithField("to", to).Error("failed to send email")
		return err
	}

	return nil
}

package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"lingua/backend/config"
)

// Mailer sends account emails (verification, password reset).
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.MailFrom, to, subject, body)

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	}

	return smtp.SendMail(addr, auth, m.cfg.MailFrom, []string{to}, []byte(msg))
}

// LogMailer writes emails to the log instead of sending them. Used in
// development and tests where no SMTP server is available.
type LogMailer struct {
	Logger *log.Logger
	Sent   []string
}

func (m *LogMailer) Send(to, subject, body string) error {
	if m.Logger != nil {
		m.Logger.Printf("mail to=%s subject=%q", to, subject)
	}
	m.Sent = append(m.Sent, to)
	return nil
}

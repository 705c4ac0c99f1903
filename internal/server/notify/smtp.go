package notify

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/server/config"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

var newDialer = func(host string, port int, user, password string) dialer {
	return gomail.NewDialer(host, port, user, password)
}

type smtpSender struct {
	dialer   dialer
	from     string
	fromName string
}

func newSMTPSender(cfg *config.Config) *smtpSender {
	return &smtpSender{
		dialer:   newDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
	}
}

func (s *smtpSender) compose(m *message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", s.from, s.fromName)
	gm.SetHeader("To", m.To)
	gm.SetHeader("Subject", m.Subject)
	gm.SetBody("text/plain", m.Text)
	gm.AddAlternative("text/html", m.HTML)
	return gm
}

func (s *smtpSender) send(_ context.Context, m *message) error {
	if err := s.dialer.DialAndSend(s.compose(m)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

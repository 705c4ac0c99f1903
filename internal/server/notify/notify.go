// Package notify delivers activation and recovery codes to users. The driver
// is picked from configuration: "log" writes the code to the application log,
// "smtp" sends mail through gomail and "ses" through Amazon SES v2.
package notify

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	"text/template"

	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/config"
	"github.com/dmitrijs2005/finances/internal/server/models"
)

const (
	DriverLog  = "log"
	DriverSMTP = "smtp"
	DriverSES  = "ses"
)

type kind int

const (
	kindActivation kind = iota
	kindRecovery
)

// message is a rendered email, independent of the transport.
type message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type templateData struct {
	Name string
	Code string
	Link string
}

var textTemplates = map[kind]*template.Template{
	kindActivation: template.Must(template.New("activation").Parse(
		`Hi {{.Name}},

Welcome to Finances. Activate your account with the link below:
{{.Link}}

Activation code: {{.Code}}
`)),
	kindRecovery: template.Must(template.New("recovery").Parse(
		`Hi {{.Name}},

We received a request to reset your password. Use the link below to choose a new one:
{{.Link}}

Recovery code: {{.Code}}

If you did not ask for this, ignore this email.
`)),
}

var htmlTemplates = map[kind]*htmltemplate.Template{
	kindActivation: htmltemplate.Must(htmltemplate.New("activation").Parse(
		`<p>Hi {{.Name}},</p>
<p>Welcome to Finances. <a href="{{.Link}}">Activate your account</a>.</p>
<p>Activation code: <code>{{.Code}}</code></p>`)),
	kindRecovery: htmltemplate.Must(htmltemplate.New("recovery").Parse(
		`<p>Hi {{.Name}},</p>
<p>We received a request to reset your password. <a href="{{.Link}}">Choose a new password</a>.</p>
<p>Recovery code: <code>{{.Code}}</code></p>
<p>If you did not ask for this, ignore this email.</p>`)),
}

var subjects = map[kind]string{
	kindActivation: "Activate your Finances account",
	kindRecovery:   "Reset your Finances password",
}

var paths = map[kind]string{
	kindActivation: "/activate",
	kindRecovery:   "/reset-password",
}

// composer renders messages; it is shared by every driver.
type composer struct {
	baseURL string
}

func (c composer) link(k kind, code string) string {
	return strings.TrimRight(c.baseURL, "/") + paths[k] + "?code=" + url.QueryEscape(code)
}

func (c composer) compose(k kind, user *models.User, code string) (*message, error) {
	data := templateData{Name: user.FirstName, Code: code, Link: c.link(k, code)}
	if data.Name == "" {
		data.Name = user.Email
	}

	var text, html bytes.Buffer
	if err := textTemplates[k].Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}
	if err := htmlTemplates[k].Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	return &message{To: user.Email, Subject: subjects[k], Text: text.String(), HTML: html.String()}, nil
}

// sender is the transport half of a notifier.
type sender interface {
	send(ctx context.Context, m *message) error
}

// Notifier renders a message and hands it to a transport.
type Notifier struct {
	composer composer
	sender   sender
}

func (n *Notifier) SendActivation(ctx context.Context, user *models.User, code string) error {
	return n.dispatch(ctx, kindActivation, user, code)
}

func (n *Notifier) SendRecovery(ctx context.Context, user *models.User, code string) error {
	return n.dispatch(ctx, kindRecovery, user, code)
}

func (n *Notifier) dispatch(ctx context.Context, k kind, user *models.User, code string) error {
	m, err := n.composer.compose(k, user, code)
	if err != nil {
		return err
	}
	return n.sender.send(ctx, m)
}

// New builds the notifier selected by cfg.MailDriver.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*Notifier, error) {
	c := composer{baseURL: cfg.AppBaseURL}

	switch cfg.MailDriver {
	case DriverLog, "":
		return &Notifier{composer: c, sender: newLogSender(log)}, nil
	case DriverSMTP:
		return &Notifier{composer: c, sender: newSMTPSender(cfg)}, nil
	case DriverSES:
		s, err := newSESSender(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Notifier{composer: c, sender: s}, nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.MailDriver)
	}
}

package services

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"Shelved/internal/config"
)

// Mailer abstracts outbound mail so the notifier can be tested without
// an SMTP server.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host string
	user string
	pass string
	from string
	addr string
}

func NewMailer(configuration *config.Configuration) Mailer {
	smtpCfg := configuration.SMTP
	from := smtpCfg.From
	if from == "" {
		from = smtpCfg.User
	}
	return &smtpMailer{
		host: smtpCfg.Host,
		user: smtpCfg.User,
		pass: smtpCfg.Pass,
		from: from,
		addr: fmt.Sprintf("%s:%d", smtpCfg.Host, smtpCfg.Port),
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	return e.Send(m.addr, auth)
}

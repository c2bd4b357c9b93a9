package mailer

import (
	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"
)

// Message is the single outbound message shape the services know about.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender is a single best-effort send. No retries happen behind it.
type Sender interface {
	Send(msg *Message) error
}

type SMTPConfig struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
}

// SMTPSender is constructed once at startup and injected into whichever
// service needs to send mail, rather than living as a package singleton.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg *SMTPConfig) *SMTPSender {
	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Pass,
	)
	dialer.SSL = cfg.Secure

	return &SMTPSender{
		dialer: dialer,
	}
}

// Verify dials the SMTP server once to confirm connectivity. Meant to run
// during process initialization as a health signal.
func (s *SMTPSender) Verify() error {
	closer, err := s.dialer.Dial()
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server")
	}

	return closer.Close()
}

func (s *SMTPSender) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

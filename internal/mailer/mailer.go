package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is one rendered notification ready for dispatch.
type Message struct {
	Subject string
	Body    string
}

// Config holds the SMTP relay settings.
type Config struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
	To       string
	SSL      bool
}

// Configured reports whether the relay settings are complete enough to send.
func (c Config) Configured() bool {
	return c.Server != "" && c.From != "" && c.To != ""
}

// Sender delivers messages over SMTP.
type Sender struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSender(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &Sender{cfg: cfg, dialer: d}
}

// Send delivers one message synchronously. Use a Dispatcher to decouple
// delivery from the request path.
func (s *Sender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail %q: %w", msg.Subject, err)
	}
	return nil
}

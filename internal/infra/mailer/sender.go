package mailer

import (
	"context"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/hirely-api/internal/config"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SMTPSender delivers through gomail; one dial per message.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	return s.dialer.DialAndSend(msg)
}

// LogSender only logs; used when SMTP is not configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, m Message) error {
	log.Printf("mail (not sent) to=%s subject=%q", m.To, m.Subject)
	return nil
}

// NewSender picks SMTP when configured.
func NewSender(cfg *config.Config) Sender {
	if cfg.MailEnabled() {
		return NewSMTPSender(cfg)
	}
	log.Println("SMTP_HOST not set, notifications will only be logged")
	return LogSender{}
}

// Package smtp adapts the outbound mail port to an SMTP transport.
package smtp

import (
	"context"

	"marketplace/internal/core/ports"

	"gopkg.in/gomail.v2"
)

// GomailMailer sends HTML mail over SMTP using gomail. The dialer keeps no
// mutable state between sends, so one mailer instance is safe for concurrent
// use across checkout requests.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer creates a mailer for the given SMTP endpoint and sender address.
func NewGomailMailer(host string, port int, username, password, from string) *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one HTML message. The SMTP dial-and-send runs in its own
// goroutine so the context deadline is honored even if the transport stalls;
// on timeout the in-flight send is abandoned and the context error returned.
func (m *GomailMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/html", msg.HTMLBody)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(message)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package mail renders and delivers outgoing email. Delivery happens on a
// Dispatcher worker pool so request handlers never wait on SMTP.
package mail

import (
	"context"
	"errors"
)

var ErrNoRecipients = errors.New("mail: no recipients")

// Message is a single outgoing email with a plain text body and an optional
// HTML alternative.
type Message struct {
	From     string
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

func (m Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	return nil
}

// Sender delivers a message synchronously.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

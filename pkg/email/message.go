package email

import (
	"context"
	"errors"
	"net/mail"
)

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

func (a Address) String() string {
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// IsZero reports whether the address has no mailbox.
func (a Address) IsZero() bool {
	return a.Email == ""
}

// Message is a transactional email ready to be dispatched.
type Message struct {
	From    Address
	To      Address
	ReplyTo Address // optional
	Subject string
	Text    string // optional plain-text body
	HTML    string // optional HTML body
}

// Validate checks the fields every transport needs.
func (m *Message) Validate() error {
	if m.From.IsZero() {
		return errors.New("email: message has no sender")
	}
	if m.To.IsZero() {
		return errors.New("email: message has no recipient")
	}
	if m.Text == "" && m.HTML == "" {
		return errors.New("email: message has no body")
	}
	return nil
}

// Transport sends one message. Implementations do not retry.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

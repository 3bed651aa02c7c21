package email

import (
	"context"
	"fmt"

	"github.com/mailersend/mailersend-go"
)

// MailerSendTransport sends messages through the MailerSend HTTP API.
type MailerSendTransport struct {
	client *mailersend.Mailersend
}

func NewMailerSendTransport(apiKey string) *MailerSendTransport {
	return &MailerSendTransport{client: mailersend.NewMailersend(apiKey)}
}

func (t *MailerSendTransport) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	message := t.client.Email.NewMessage()
	message.SetFrom(mailersend.From{
		Name:  msg.From.Name,
		Email: msg.From.Email,
	})
	message.SetRecipients([]mailersend.Recipient{
		{
			Name:  msg.To.Name,
			Email: msg.To.Email,
		},
	})
	if !msg.ReplyTo.IsZero() {
		message.SetReplyTo(mailersend.ReplyTo{
			Name:  msg.ReplyTo.Name,
			Email: msg.ReplyTo.Email,
		})
	}
	message.SetSubject(msg.Subject)
	if msg.HTML != "" {
		message.SetHTML(msg.HTML)
	}
	if msg.Text != "" {
		message.SetText(msg.Text)
	}

	if _, err := t.client.Email.Send(ctx, message); err != nil {
		return fmt.Errorf("mailersend send to %s: %w", msg.To.Email, err)
	}
	return nil
}

package email

import (
	"context"
	"log/slog"

	"github.com/yosssi/gohtml"
)

// LogTransport writes messages to a logger instead of sending them.
// Development only; config refuses it in release mode.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	attrs := []any{
		"from", msg.From.String(),
		"to", msg.To.String(),
		"subject", msg.Subject,
	}
	if !msg.ReplyTo.IsZero() {
		attrs = append(attrs, "reply_to", msg.ReplyTo.String())
	}
	if msg.Text != "" {
		attrs = append(attrs, "text", msg.Text)
	}
	if msg.HTML != "" {
		attrs = append(attrs, "html", gohtml.Format(msg.HTML))
	}
	t.log.InfoContext(ctx, "email not sent (log transport)", attrs...)
	return nil
}

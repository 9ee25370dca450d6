package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// LogSender writes messages to the log instead of sending them. It is used
// when no mail server is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	log := s.Logger
	if log == nil {
		log = slogx.FromContext(ctx)
	}
	log.Info("email not sent, no mail server configured",
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.TextBody),
	)
	return nil
}

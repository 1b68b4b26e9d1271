package mail

import (
	"context"

	"github.com/arijitp/notekeeper/internal/logging"
)

// LogMailer writes outbound messages to the structured log instead of
// delivering them. Intended for development only.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(logger logging.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("module", "mail")}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info(ctx, "outbound email (not delivered)", "to", to, "subject", subject, "body", body)
	return nil
}

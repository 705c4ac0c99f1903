package notify

import (
	"context"

	"github.com/dmitrijs2005/finances/internal/logging"
)

// logSender writes messages to the application log instead of mailing them.
// Used in development.
type logSender struct {
	log logging.Logger
}

func newLogSender(log logging.Logger) *logSender {
	return &logSender{log: log.With("module", "notify")}
}

func (s *logSender) send(ctx context.Context, m *message) error {
	s.log.Info(ctx, "email", "to", m.To, "subject", m.Subject, "body", m.Text)
	return nil
}

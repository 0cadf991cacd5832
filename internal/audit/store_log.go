package audit

import (
	"context"
	"log/slog"
)

// LogStore writes each event as a structured log line. It is the default sink.
type LogStore struct {
	logger *slog.Logger
}

func NewLogStore(logger *slog.Logger) *LogStore {
	return &LogStore{logger: logger}
}

func (s *LogStore) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "audit event",
		"action", string(event.Action),
		"subject", event.Subject,
		"decision", event.Decision,
		"reason", event.Reason,
		"device", event.Device,
		"request_id", event.RequestID,
		"timestamp", event.Timestamp,
	)
	return nil
}

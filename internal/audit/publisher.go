package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sumbandila/internal/platform/privacy"
	"sumbandila/pkg/platform/middleware/request"
)

// Publisher enriches events and hands them to a Store. Audit failures are
// logged and never fail the calling request.
type Publisher struct {
	store  Store
	events chan Event
	wg     sync.WaitGroup
	logger *slog.Logger
	async  bool
	now    func() time.Time
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithAsyncBuffer queues events and persists them on a background goroutine.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan Event, size)
			p.async = true
		}
	}
}

// WithPublisherLogger sets a logger for sink error reporting.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) PublisherOption {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logFailure(context.Background(), "failed to persist audit event", err, event)
		}
	}
}

// Close drains the async queue.
func (p *Publisher) Close() {
	if p.async && p.events != nil {
		close(p.events)
		p.wg.Wait()
	}
}

// Emit hashes the subject, stamps time and request ID, and appends the event.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = request.GetRequestID(ctx)
	}
	event.Subject = privacy.HashIdentifier(event.Subject)

	if p.async {
		select {
		case p.events <- event:
		default:
			p.logFailure(ctx, "audit buffer full, event dropped", nil, event)
		}
		return
	}
	if err := p.store.Append(ctx, event); err != nil {
		p.logFailure(ctx, "failed to persist audit event", err, event)
	}
}

func (p *Publisher) logFailure(ctx context.Context, msg string, err error, event Event) {
	if p.logger == nil {
		return
	}
	p.logger.WarnContext(ctx, msg,
		"error", err,
		"action", string(event.Action),
		"request_id", event.RequestID,
	)
}

// Package tracer wraps span creation for certificate lookups so the registry
// code does not import OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer for tests and when tracing is disabled
//   - OTelTracer backed by the global OpenTelemetry provider
package tracer

import "context"

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span and marks it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer starts spans.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to a span or event.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span names.
const (
	SpanCertificateVerify = "certificate.verify"
	SpanCertificateBulk   = "certificate.verify_bulk"
)

// Attribute keys. Certificate numbers are recorded hashed only.
const (
	AttrNumberHash = "certificate.number_hash"
	AttrOutcome    = "certificate.outcome"
	AttrBulkCount  = "certificate.bulk_count"
)

// Outcomes recorded on certificate.verify.
const (
	OutcomeValid    = "valid"
	OutcomeRevoked  = "revoked"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Event names.
const (
	EventAuditEmitted = "audit.emitted"
)

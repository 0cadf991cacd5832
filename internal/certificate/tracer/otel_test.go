package tracer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToOTelAttributes(t *testing.T) {
	tests := []struct {
		name string
		in   []Attribute
		want []attribute.KeyValue
	}{
		{"none", nil, nil},
		{
			"typed values",
			[]Attribute{
				String(AttrOutcome, OutcomeNotFound),
				Int(AttrBulkCount, 2500),
				Bool("cached", true),
			},
			[]attribute.KeyValue{
				attribute.String(AttrOutcome, OutcomeNotFound),
				attribute.Int(AttrBulkCount, 2500),
				attribute.Bool("cached", true),
			},
		},
		{
			"other values use fmt form",
			[]Attribute{{Key: "latency", Value: 1500 * time.Millisecond}},
			[]attribute.KeyValue{attribute.String("latency", "1.5s")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toOTelAttributes(tt.in))
		})
	}
}

//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"sumbandila/internal/audit"
	"sumbandila/internal/platform/config"
	"sumbandila/internal/platform/kafka/producer"
	"sumbandila/internal/platform/privacy"
	"sumbandila/pkg/testutil/containers"
)

func TestKafkaAuditRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	kafka := containers.GetManager().GetKafka(t)
	topic := "audit-it"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prod, err := producer.New(config.KafkaConfig{Brokers: kafka.Brokers, Acks: "all", Retries: 3}, logger)
	require.NoError(t, err)

	pub := audit.NewPublisher(audit.NewKafkaStore(prod, topic), audit.WithAsyncBuffer(8))
	pub.Emit(context.Background(), audit.Event{Action: audit.ActionTokenIssued, Subject: "+27820000000"})
	pub.Close()
	require.NoError(t, prod.Close())

	consumer, err := kafka.NewConsumer(topic)
	require.NoError(t, err)
	defer consumer.Close()

	want := privacy.HashIdentifier("+27820000000")
	rec := kafka.WaitForRecord(context.Background(), consumer, 20*time.Second, func(r *kgo.Record) bool {
		return string(r.Key) == want
	})
	require.NotNil(t, rec)

	var event audit.Event
	require.NoError(t, json.Unmarshal(rec.Value, &event))
	require.Equal(t, audit.ActionTokenIssued, event.Action)
}

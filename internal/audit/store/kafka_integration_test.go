//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"portail-rse/internal/audit"
	"portail-rse/internal/audit/store"
	"portail-rse/internal/platform/config"
	"portail-rse/internal/platform/kafka"
	"portail-rse/pkg/testutil/containers"
)

func TestKafkaStoreProducesKeyedJSON(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rp := containers.GetManager().GetRedpanda(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "portail-rse.audit.test"
	producer, err := kafka.NewClient(config.KafkaConfig{Brokers: rp.Brokers, AuditTopic: topic})
	require.NoError(t, err)
	defer producer.Close()
	require.NoError(t, kafka.EnsureTopic(ctx, producer, topic))

	s := store.NewKafkaStore(producer, topic)
	require.NoError(t, s.Append(ctx, audit.Event{
		Timestamp: time.Now().UTC(),
		Action:    audit.ActionReportPublished,
		Siren:     "123456789",
		Year:      2025,
	}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.Empty(t, fetches.Errors())
	records := fetches.Records()
	require.NotEmpty(t, records)

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, "123456789", string(records[0].Key))
	require.Equal(t, audit.ActionReportPublished, got.Action)
	require.Equal(t, 2025, got.Year)
}

// Package events publishes roster changes to Kafka, best-effort.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// MemberUpserted is emitted after a member lands in the directory.
type MemberUpserted struct {
	SubmissionID string    `json:"submission_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Team         string    `json:"team"`
	School       string    `json:"school"`
	Updated      bool      `json:"updated"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher produces member events. A nil Publisher (Kafka unconfigured)
// drops events silently; produce failures are logged and dropped, never
// surfaced to the ingestion path.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

// Publish fires the event asynchronously. The submission is keyed by member
// name so per-member events stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, event MemberUpserted) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "encode member event", "error", err)
		return
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Name),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("publish member event",
				"topic", p.topic,
				"name", event.Name,
				"error", err,
			)
		}
	})
}

// Close flushes outstanding produces and releases the client.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

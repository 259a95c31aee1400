package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/dijkstra-edu/dataforge/internal/config"
)

const (
	TopicSyncEvents    = "leetcode.sync.events"
	TopicProfileEvents = "profile.events"
)

const (
	SyncEventTypeCompleted = "sync.completed"

	ProfileEventTypeCreated = "profile.created"
	ProfileEventTypeDeleted = "profile.deleted"
)

type KafkaProducerClient struct {
	SyncEventsWriter    *kafka.Writer
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	syncWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicSyncEvents,
		Balancer: &kafka.LeastBytes{},
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		SyncEventsWriter:    syncWriter,
		ProfileEventsWriter: profileWriter,
	}, nil
}

type SyncEventPayload struct {
	EventType  string    `json:"event_type"`
	ProfileID  uuid.UUID `json:"profile_id"`
	Username   string    `json:"username"`
	Created    bool      `json:"created"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (c *KafkaProducerClient) PublishSyncEvent(ctx context.Context, payload SyncEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sync event failed: %w", err)
	}
	return c.SyncEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ProfileID.String()),
		Value: value,
	})
}

type ProfileEventPayload struct {
	EventType  string    `json:"event_type"`
	ProfileID  uuid.UUID `json:"profile_id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile event failed: %w", err)
	}
	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ProfileID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.SyncEventsWriter != nil {
		c.SyncEventsWriter.Close()
	}
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// Publisher pushes alert lifecycle events to a Pub/Sub topic so other
// hub services (digest mails, dashboards) can react. Publishing is
// best-effort: failures are logged and never surfaced to callers.
type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// Event is the envelope written to the topic.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// NewPublisher connects to Pub/Sub and binds the given topic.
func NewPublisher(ctx context.Context, projectID, topicName, credentialsFile string) (*Publisher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	log.Printf("[Events] Publisher initialized for topic: %s", topicName)
	return &Publisher{
		client: client,
		topic:  client.Topic(topicName),
	}, nil
}

// Publish serializes the event and hands it to Pub/Sub. Safe to call on
// a nil Publisher (events disabled).
func (p *Publisher) Publish(eventType, entityID string, payload any) {
	if p == nil {
		return
	}

	data, err := json.Marshal(Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		log.Printf("[Events] Failed to marshal event %s: %v", eventType, err)
		return
	}

	result := p.topic.Publish(context.Background(), &pubsub.Message{Data: data})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := result.Get(ctx); err != nil {
			log.Printf("[Events] Failed to publish event %s: %v", eventType, err)
		}
	}()
}

// Close releases the Pub/Sub client.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.topic.Stop()
	p.client.Close()
}

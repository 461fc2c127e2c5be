// Package mq publishes domain events after successful writes. Publishing is
// best effort: failures are logged and never reach the client.
package mq

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mongochef/models"
)

// Event methods.
const (
	MethodCreate = "CREATE"
	MethodUpdate = "UPDATE"
	MethodDelete = "DELETE"
)

// Emitter receives an event after every successful write.
type Emitter interface {
	Emit(ctx context.Context, event models.Event)
}

// Redis publishes events as JSON on a Pub/Sub channel.
type Redis struct {
	client  *redis.Client
	channel string
	timeout time.Duration
}

func NewRedis(client *redis.Client, channel string) *Redis {
	return &Redis{client: client, channel: channel, timeout: 2 * time.Second}
}

func (r *Redis) Emit(ctx context.Context, event models.Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("marshal event", "error", err, "entity", event.EntityType)
		return
	}

	// The request context may already be done once the response is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()
	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		slog.Warn("publish event", "error", err, "channel", r.channel,
			"entity", event.EntityType, "method", event.Method, "key", event.Key)
		return
	}
	slog.Debug("event published", "channel", r.channel, "entity", event.EntityType, "method", event.Method)
}

// Nop drops every event; used when Redis is not configured.
type Nop struct{}

func (Nop) Emit(context.Context, models.Event) {}

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *Recorder) Emit(_ context.Context, event models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

// Count returns how many recorded events match entity and method.
func (r *Recorder) Count(entity, method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.EntityType == entity && e.Method == method {
			n++
		}
	}
	return n
}

// NewEvent builds an event for one written document.
func NewEvent(entity, method, key string, id primitive.ObjectID) models.Event {
	e := models.Event{EntityType: entity, Method: method, Key: key, At: time.Now().UTC()}
	if !id.IsZero() {
		e.EntityID = id.Hex()
	}
	return e
}

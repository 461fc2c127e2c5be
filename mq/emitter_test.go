package mq

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"mongochef/models"
)

var (
	_ Emitter = (*Redis)(nil)
	_ Emitter = Nop{}
	_ Emitter = (*Recorder)(nil)
)

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Emit(context.Background(), models.Event{EntityType: "ingredient", Method: MethodCreate})
		}()
	}
	wg.Wait()
	rec.Emit(context.Background(), models.Event{EntityType: "recipe", Method: MethodDelete})

	assert.Len(t, rec.Events(), 11)
	assert.Equal(t, 10, rec.Count("ingredient", MethodCreate))
	assert.Equal(t, 1, rec.Count("recipe", MethodDelete))
	assert.Equal(t, 0, rec.Count("recipe", MethodCreate))
}

func TestRedisEmitSwallowsErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	em := NewRedis(client, "mongochef-events")
	em.timeout = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotPanics(t, func() {
		em.Emit(ctx, models.Event{EntityType: "recipe", Method: MethodCreate, Key: "pancakes"})
	})
}

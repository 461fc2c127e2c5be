package rdx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	opts, err := Options("localhost:6379", "pw")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)

	opts, err = Options("redis://:urlpw@cache.internal:6380/2", "")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "urlpw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = Options("redis://:urlpw@cache.internal:6380", "envpw")
	require.NoError(t, err)
	assert.Equal(t, "envpw", opts.Password)

	_, err = Options("http://cache.internal", "")
	assert.Error(t, err)
}

func TestConnectUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Connect(ctx, "redis://127.0.0.1:1", "")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

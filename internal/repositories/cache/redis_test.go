package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := Connect(context.Background(), &RedisConfig{Host: srv.Host(), Port: srv.Port()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, HealthCheck(context.Background(), client))
}

func TestConnect_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	host, port := srv.Host(), srv.Port()
	srv.Close()

	_, err := Connect(context.Background(), &RedisConfig{Host: host, Port: port})
	assert.ErrorContains(t, err, "redis connection failed")
}

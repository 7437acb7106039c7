package db

import (
	"testing"

	"threadline-be/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	srv, err := miniredis.Run()
	require.NoError(t, err)
	defer srv.Close()

	cfg := &config.Config{RedisAddr: srv.Addr()}

	rdb := InitRedis(cfg)
	assert.NotNil(t, rdb)
	defer rdb.Close()
}

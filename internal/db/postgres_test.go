package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/config"
)

func TestNewPostgresDB_BadConnString(t *testing.T) {
	cfg := config.DatabaseConfig{MaxConns: 4, MinConns: 1}

	pg, err := NewPostgresDB(context.Background(), cfg, "postgres://%zz")
	require.Error(t, err)
	assert.Nil(t, pg)
	assert.Contains(t, err.Error(), "failed to parse pgxpool config")
}

func TestPostgresDBCloseWithoutPool(t *testing.T) {
	assert.NotPanics(t, func() { (&PostgresDB{}).Close() })
}

package mysql

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"garmentsync/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     3307,
		User:     "sync",
		Password: "p@ss",
		Name:     "garmentsync",
	})

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "sync", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "db.internal:3307", parsed.Addr)
	assert.Equal(t, "garmentsync", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
}

func TestNewConnection_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials a closed port")
	}

	start := time.Now()
	db, err := NewConnection(config.DatabaseConfig{
		Host:            "127.0.0.1",
		Port:            1,
		User:            "nobody",
		Name:            "none",
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnectRetries:  0,
	}, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Less(t, time.Since(start), 30*time.Second)
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_DEBUG", "false")
	t.Setenv("TEST_DATABASE_PATH", "/tmp/assignments.db")
	t.Setenv("TEST_SERVER_READTIMEOUT", "10s")

	conf := NewConfig()

	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.False(t, conf.Debug)
	assert.Equal(t, "/tmp/assignments.db", conf.Database.Path)
	assert.Equal(t, 10*time.Second, conf.Server.ReadTimeout)

	// defaults
	assert.Equal(t, ":3000", conf.Server.Address)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
	assert.False(t, conf.Server.DisableReqLogs)
}

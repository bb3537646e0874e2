package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	t.Setenv("TEST_ENV_BAD_INT", "forty-two")
	t.Setenv("TEST_ENV_BOOL", "true")
	t.Setenv("TEST_ENV_DURATION", "90s")

	assert.Equal(t, 42, GetEnvInt("TEST_ENV_INT", 1))
	assert.Equal(t, 1, GetEnvInt("TEST_ENV_BAD_INT", 1))
	assert.True(t, GetEnvBool("TEST_ENV_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_ENV_DURATION", time.Minute))
	assert.Equal(t, "fallback", GetEnvString("TEST_ENV_UNSET", "fallback"))
}

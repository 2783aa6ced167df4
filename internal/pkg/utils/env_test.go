package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MEDISENSE_TEST_STRING", "value")
	t.Setenv("MEDISENSE_TEST_INT", "42")
	t.Setenv("MEDISENSE_TEST_BAD_INT", "forty-two")
	t.Setenv("MEDISENSE_TEST_BOOL", "false")
	t.Setenv("MEDISENSE_TEST_INT64", "7")

	assert.Equal(t, "value", GetEnvString("MEDISENSE_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("MEDISENSE_TEST_UNSET", "default"))
	assert.Equal(t, 42, GetEnvInt("MEDISENSE_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("MEDISENSE_TEST_BAD_INT", 1))
	assert.False(t, GetEnvBool("MEDISENSE_TEST_BOOL", true))
	assert.Equal(t, int64(7), GetEnvInt64("MEDISENSE_TEST_INT64", 0))
}

package feeders

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	LogLevel string `env:"EOSIM_TEST_LOG_LEVEL"`
	Capacity int    `env:"EOSIM_TEST_CAPACITY"`
}

func TestEnvFeederCoercesTypedFields(t *testing.T) {
	t.Setenv("EOSIM_TEST_LOG_LEVEL", "debug")
	t.Setenv("EOSIM_TEST_CAPACITY", "128")

	var cfg testConfig
	require.NoError(t, NewEnvFeeder().Feed(&cfg))

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 128, cfg.Capacity)
}

func TestEnvFeederLeavesUnsetFieldsAlone(t *testing.T) {
	os.Unsetenv("EOSIM_TEST_LOG_LEVEL")
	os.Unsetenv("EOSIM_TEST_CAPACITY")

	cfg := testConfig{LogLevel: "info", Capacity: 4}
	require.NoError(t, NewEnvFeeder().Feed(&cfg))

	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 4, cfg.Capacity)
}

func TestEnvFeederRejectsNonStructPointer(t *testing.T) {
	var notAStruct int
	require.Error(t, NewEnvFeeder().Feed(&notAStruct))
}

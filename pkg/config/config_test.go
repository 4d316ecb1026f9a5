package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SYMBOL", "BTC-USD")
	t.Setenv("KAFKA_ORDER_TOPIC", "order_commands")
	t.Setenv("KAFKA_ORDER_BROKER", "localhost:9092")
	t.Setenv("KAFKA_MATCH_TOPIC", "match_events")
	t.Setenv("KAFKA_MATCH_BROKER", "localhost:9092,localhost:9093")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg := &Config{}
	require.NoError(t, Load(cfg))

	assert.Equal(t, "BTC-USD", cfg.Symbol)
	assert.Equal(t, "order_commands", cfg.OrderReader.Topic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.OrderReader.Brokers)
	assert.Equal(t, "matching_engine", cfg.OrderReader.GroupID)
	assert.Equal(t, "match_events", cfg.MatchPublisher.Topic)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.MatchPublisher.Brokers)
	assert.Equal(t, 30, cfg.Engine.VerifyIntervalSeconds)
	assert.Equal(t, 25, cfg.Engine.DepthLimit)
}

func TestMustLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENGINE_VERIFY_INTERVAL_SECONDS", "5")

	cfg := MustLoad(&Config{})
	assert.Equal(t, "BTC-USD", cfg.Symbol)
	assert.Equal(t, 5, cfg.Engine.VerifyIntervalSeconds)
}

func TestMustLoad_PanicsOnMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	require.NoError(t, os.Unsetenv("SYMBOL"))

	assert.Panics(t, func() {
		MustLoad(&Config{})
	})
}

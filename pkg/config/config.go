// Package config loads engine configuration from environment variables,
// optionally seeded from a .env file.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration and panics on failure.
func MustLoad[T any](cfg T) T {
	_ = godotenv.Load()

	return env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration, ignoring a missing .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load()

	return env.Parse(cfg)
}

// Config holds the configuration for the matching engine process.
type Config struct {
	Symbol         string               `env:"SYMBOL,required"` // instrument identifier, e.g. BTC-USD
	SymbolSpecPath string               `env:"SYMBOL_SPEC_PATH" envDefault:""`
	OrderReader    KafkaConfig          `envPrefix:"KAFKA_ORDER_"`
	MatchPublisher MatchPublisherConfig `envPrefix:"KAFKA_MATCH_"`
	Engine         EngineConfig         `envPrefix:"ENGINE_"`
}

// KafkaConfig holds the configuration for the inbound command topic.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC,required"`
	GroupID string   `env:"GROUP_ID" envDefault:"matching_engine"`
	Brokers []string `env:"BROKER,required"`
}

// MatchPublisherConfig holds the configuration for the outbound match topic.
type MatchPublisherConfig struct {
	Topic   string   `env:"TOPIC,required"`
	Brokers []string `env:"BROKER,required"`
}

// EngineConfig tunes the processing loop.
type EngineConfig struct {
	// VerifyInterval is how often the book's internal state is checked
	// against its aggregates. Zero disables periodic verification.
	VerifyIntervalSeconds int `env:"VERIFY_INTERVAL_SECONDS" envDefault:"30"`
	// DepthLimit bounds L2 snapshots taken by the engine.
	DepthLimit int `env:"DEPTH_LIMIT" envDefault:"25"`
}

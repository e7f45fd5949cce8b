package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible monster placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"RASCAL_SEED"`

	// PlayerName is the name given to the player.
	PlayerName string `env:"RASCAL_PLAYER_NAME" envDefault:"Aaron"`

	// MessageTurns is how many turns a message stays on the message line.
	MessageTurns int `env:"RASCAL_MESSAGE_TURNS" envDefault:"5"`

	// Telemetry enables exporting traces over OTLP.
	Telemetry bool `env:"RASCAL_TELEMETRY" envDefault:"false"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.MessageTurns < 0 {
		return errors.New("RASCAL_MESSAGE_TURNS must not be negative")
	}
	return nil
}

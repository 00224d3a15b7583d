package config

import (
	"os"

	"knockpoker-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Knock Poker
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		Ante           int `yaml:"ante" envconfig:"ante"`
		StartingTokens int `yaml:"startingTokens" envconfig:"starting_tokens"`
		// EndGameDelay is the number of seconds between the final burn and settlement
		EndGameDelay int `yaml:"endGameDelay" envconfig:"end_game_delay"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; the defaults and environment take over
func Load() error {
	config = Config{}
	config.Log.Level = "info"
	config.Game.Ante = 1
	config.Game.StartingTokens = 50
	config.Game.EndGameDelay = 1

	configFile := util.Getenv("KP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	}

	if err := envconfig.Process("kp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

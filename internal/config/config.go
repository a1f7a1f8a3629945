package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultBaseURL - used when no endpoint variable is set.
const DefaultBaseURL = "http://localhost:3001"

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PlayerXName string `yaml:"player-x-name" env:"PLAYER_X_NAME" env-default:"Player X"`
	PlayerOName string `yaml:"player-o-name" env:"PLAYER_O_NAME" env-default:"Player O"`
	API         API    `yaml:"api"`
}

type API struct {
	TicTacToeURL  string `yaml:"tictactoe-api-url" env:"TICTACTOE_API_URL" env-default:""`
	GameServerURL string `yaml:"game-server-url" env:"GAME_SERVER_URL" env-default:""`
	BaseURL       string `yaml:"base-url" env:"API_BASE_URL" env-default:""`
}

// MustLoad - loads configuration from the given yaml file when it exists,
// from the environment otherwise. Panics on a malformed file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
		}
		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// ResolveBaseURL - picks the remote authority endpoint: first non-empty of
// TICTACTOE_API_URL, GAME_SERVER_URL and API_BASE_URL, else the default.
// A trailing slash is stripped either way.
func (that *API) ResolveBaseURL() string {
	for _, candidate := range []string{that.TicTacToeURL, that.GameServerURL, that.BaseURL} {
		if candidate != "" {
			return strings.TrimRight(candidate, "/")
		}
	}

	return DefaultBaseURL
}

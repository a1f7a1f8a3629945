package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_ResolveBaseURL(t *testing.T) {
	t.Run("FirstNonEmptyWins", func(t *testing.T) {
		api := API{
			TicTacToeURL:  "http://first:3001",
			GameServerURL: "http://second:3001",
			BaseURL:       "http://third:3001",
		}

		assert.Equal(t, "http://first:3001", api.ResolveBaseURL())
	})

	t.Run("FallsThroughInOrder", func(t *testing.T) {
		api := API{GameServerURL: "http://second:3001"}

		assert.Equal(t, "http://second:3001", api.ResolveBaseURL())

		api = API{BaseURL: "http://third:3001"}

		assert.Equal(t, "http://third:3001", api.ResolveBaseURL())
	})

	t.Run("DefaultWhenAllEmpty", func(t *testing.T) {
		api := API{}

		assert.Equal(t, DefaultBaseURL, api.ResolveBaseURL())
	})

	t.Run("TrailingSlashStripped", func(t *testing.T) {
		api := API{TicTacToeURL: "http://host:3001/"}

		assert.Equal(t, "http://host:3001", api.ResolveBaseURL())
	})
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TICTACTOE_API_URL", "http://env-host:4000/")
	t.Setenv("LOG_LEVEL", "debug")

	// When: loading with no config file present
	conf, err := Load("does-not-exist.yml")

	// Then: the environment supplies the values
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "http://env-host:4000", conf.API.ResolveBaseURL())
	assert.Equal(t, "Player X", conf.PlayerXName)
	assert.Equal(t, "Player O", conf.PlayerOName)
}

package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAskCommand(t *testing.T) {
	t.Run("should answer a question", func(t *testing.T) {
		out := execute(t, "ask", "how", "do", "I", "add", "a", "cube")
		assert.Contains(t, out, "Add Cube")
	})
	t.Run("should print only the topic", func(t *testing.T) {
		out := execute(t, "ask", "--topic", "where", "is", "london")
		assert.Equal(t, "london\n", out)
	})
	t.Run("should report questions without a topic", func(t *testing.T) {
		out := execute(t, "ask", "--topic", "what", "is", "the", "weather")
		assert.Equal(t, "none\n", out)
	})
	t.Run("should greet without a question", func(t *testing.T) {
		out := execute(t, "ask")
		assert.Contains(t, out, "3D guide")
	})
}

func TestCityCommand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	out := execute(t, "city", "--config", missing, "--seed", "42")
	assert.Contains(t, out, "seed 42: 121 entities, 120 buildings, 1 helpers")
	assert.Contains(t, out, "regions: London, City of London, Canary Wharf, Westminster")
}

func TestConfigCommand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	out := execute(t, "config", "--config", missing)
	assert.Contains(t, out, "highlight_color:")
	assert.Contains(t, out, "ffd166")
	assert.Contains(t, out, "buildings: 120")
}

func TestLogLevelFlag(t *testing.T) {
	var f logLevelFlag
	require.NoError(t, f.Set("debug"))
	assert.Equal(t, slog.LevelDebug, f.value)
	assert.Error(t, f.Set("loud"))
	assert.Equal(t, "DEBUG", f.String())
}

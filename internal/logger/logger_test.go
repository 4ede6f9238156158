package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-prototype/internal/config"
)

func TestHistoryKeepsNewest(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		_, err := fmt.Fprintf(h, "line %d\n", i)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, h.Lines())
	assert.Equal(t, []string{"line 3", "line 4"}, h.Last(2))
	assert.Len(t, h.Last(10), 3)
}

func TestNewWritesFileAndHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	l, err := New(config.LoggingConfig{Level: "debug", Format: "console", File: path})
	require.NoError(t, err)

	l.Info("changing skybox", zap.String("name", "Forest"))
	l.Debug("verbose")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "changing skybox")
	assert.Contains(t, string(data), `"name": "Forest"`)

	lines := l.History().Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "changing skybox")
}

func TestNewLevelFiltersAndFallsBack(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "warn"})
	require.NoError(t, err)
	l.Info("dropped")
	l.Warn("kept")
	assert.Len(t, l.History().Lines(), 1)
	require.NoError(t, l.Close())

	l, err = New(config.LoggingConfig{Level: "shouting"})
	require.NoError(t, err)
	l.Debug("dropped")
	l.Info("kept")
	assert.Len(t, l.History().Lines(), 1)
}

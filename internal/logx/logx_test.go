package logx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jask/botguide/internal/config"
)

func TestSetupWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "botguide.log")
	log, closer, err := Setup(config.LogConfig{Level: "debug", File: path, JSON: true})
	require.NoError(t, err)

	WithTab(log, "risk").Debug("tab selected")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var line map[string]any
	require.NoError(t, json.Unmarshal(data, &line))
	require.Equal(t, "tab selected", line["msg"])
	require.Equal(t, "risk", line["tab"])
	require.NotEmpty(t, line["session"])
}

func TestSetupWithoutFileDiscards(t *testing.T) {
	log, closer, err := Setup(config.LogConfig{})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	require.Equal(t, logrus.InfoLevel, log.Logger.GetLevel())
	require.NotNil(t, log.Data["session"])
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, _, err := Setup(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestWithTabEmptyKeepsEntry(t *testing.T) {
	log := Discard()
	require.Same(t, log, WithTab(log, ""))
}

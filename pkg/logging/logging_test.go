package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "dotstrap", "dotstrap.log")

	SetupLogger(0, logFile)

	info, err := os.Stat(logFile)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestSetupLoggerConsoleOnlyWithoutPath(t *testing.T) {
	SetupLogger(1, "")

	// must not panic and the global logger stays usable
	logger := GetLogger("test")
	logger.Info().Msg("console only")
}

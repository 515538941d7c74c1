package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.FileExists(t, filepath.Join(tempDir, "fin", "fin.log"))
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "fin", "fin.log"), getLogFilePath())
}

func TestSetupLogFileFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := setupLogFile(filepath.Join(blocker, "fin", "fin.log"))
	assert.Error(t, err)
}

func TestLogOperationStart(t *testing.T) {
	done := LogOperationStart(GetLogger("test"), "render")
	require.NotNil(t, done)
	done()
}

func TestSetupLoggerClosesPreviousLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Cleanup(closeLogFile)

	SetupLogger(0)
	first := openLogFile
	require.NotNil(t, first)

	SetupLogger(0)
	require.NotNil(t, openLogFile)
	assert.NotSame(t, first, openLogFile)

	_, err := first.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

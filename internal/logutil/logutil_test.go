package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-qmap/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Log
		wantErr bool
	}{
		{name: "console", cfg: config.Log{Level: "debug", Format: "console"}},
		{name: "json", cfg: config.Log{Level: "warn", Format: "json"}},
		{name: "default format", cfg: config.Log{Level: "info"}},
		{name: "bad level", cfg: config.Log{Level: "loud", Format: "console"}, wantErr: true},
		{name: "bad format", cfg: config.Log{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.log")

	logger, err := New(config.Log{Level: "info", Format: "json", Filename: path, MaxSize: 1})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

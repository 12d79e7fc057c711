package iologger_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/internal/iologger"
	"github.com/gnames/gnkore/pkg/config"
	"github.com/gnames/gnkore/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
}

func readLog(t *testing.T, dir string) string {
	t.Helper()
	bs, err := os.ReadFile(filepath.Join(dir, iologger.LogFile))
	require.NoError(t, err)
	return string(bs)
}

func TestInit_File(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()

	tests := []struct {
		format, contains string
	}{
		{"json", `"msg":"hello"`},
		{"text", "msg=hello"},
		{"tint", "hello"},
	}

	for _, v := range tests {
		t.Run(v.format, func(t *testing.T) {
			cfg := config.LogConfig{
				Format:      v.format,
				Level:       "info",
				Destination: "file",
			}
			err := iologger.Init(dir, cfg, false)
			require.NoError(t, err)

			slog.Info("hello", "bioproject", "PRJEB1")
			res := readLog(t, dir)
			assert.Contains(t, res, v.contains)
			assert.Contains(t, res, "PRJEB1")
		})
	}
}

func TestInit_Level(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()

	cfg := config.LogConfig{Format: "text", Level: "warn", Destination: "file"}
	require.NoError(t, iologger.Init(dir, cfg, false))

	slog.Info("quiet")
	slog.Warn("loud")
	res := readLog(t, dir)
	assert.NotContains(t, res, "quiet")
	assert.Contains(t, res, "loud")
}

func TestInit_Append(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("first")

	require.NoError(t, iologger.Init(dir, cfg, true))
	slog.Info("second")
	res := readLog(t, dir)
	assert.Contains(t, res, "first")
	assert.Contains(t, res, "second")

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("third")
	res = readLog(t, dir)
	assert.NotContains(t, res, "first")
	assert.Contains(t, res, "third")
}

func TestInit_BadDir(t *testing.T) {
	restoreDefault(t)
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	err := iologger.Init(dir, cfg, false)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestInit_Streams(t *testing.T) {
	restoreDefault(t)
	for _, v := range []string{"stdout", "stderr", "unknown"} {
		cfg := config.LogConfig{Format: "json", Level: "error", Destination: v}
		assert.NoError(t, iologger.Init(t.TempDir(), cfg, false), v)
	}
}

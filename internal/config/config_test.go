package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/passbook/internal/extract"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Aliases = map[string][]string{"Description": {"Txn Particulars", "Info"}}
	cfg.Stream.MinColumns = 4
	cfg.Preview.Rows = 3

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Aliases)
	assert.Equal(t, 10, cfg.Preview.Rows)
	assert.Equal(t, extract.DefaultOptions(), cfg.ExtractOptions())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("stream:\n  min_columns: 6\naliases:\n  Date: [Booking Day]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Stream.MinColumns)
	assert.Equal(t, extract.DefaultOptions().MaxWrappedLines, cfg.Stream.MaxWrappedLines)
	assert.Equal(t, 3, cfg.Structured.MinHeaderCells)
	assert.InDelta(t, 2.5, cfg.Stream.MaxRowGap, 0.001)
	assert.InDelta(t, 3.0, cfg.Layout.RowTolerance, 0.001)
	assert.Equal(t, []string{"Booking Day"}, cfg.Aliases["Date"])
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stream: [not, a, map"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

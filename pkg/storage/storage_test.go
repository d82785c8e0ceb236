package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndReadFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "out", "summary.yaml")

	require.NoError(t, s.SaveFile(path, []byte("total: 3\n")))

	data, err := s.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "total: 3\n", string(data))

	stats, err := s.GetFileStats(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.SizeBytes)
}

func TestReadFileMissing(t *testing.T) {
	s := &Storage{}
	_, err := s.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEnsureDirCurrentDirectory(t *testing.T) {
	s := &Storage{}
	assert.NoError(t, s.EnsureDir("chart.png"))
}

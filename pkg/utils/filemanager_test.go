package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputPath(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	assert.Equal(t, "output/result.csv", GenerateOutputPath("output/result.csv", now))
	assert.Equal(t, "out/summary_20240115.csv", GenerateOutputPath("out/summary_{date}.csv", now))
	assert.Equal(t, "out/20240115_143022-143022.xlsx", GenerateOutputPath("out/{timestamp}-{time}.xlsx", now))

	got := GenerateOutputPath("out/{uuid}.csv", now)
	id := strings.TrimSuffix(strings.TrimPrefix(got, "out/"), ".csv")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))

	assert.True(t, DirExists(path))
	assert.False(t, DirExists(filepath.Join(dir, "missing", "a.csv")))
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"prodtable/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProductsEmbedded(t *testing.T) {
	rows, source, err := loadProducts(&cmd.Config{})
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	assert.NotEmpty(t, rows)
}

func TestLoadProductsMissingDBFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.sqlite")

	_, source, err := loadProducts(&cmd.Config{DBPath: path})
	require.Error(t, err)
	assert.Equal(t, path, source)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestLoadProductsMissingDataFileFails(t *testing.T) {
	_, _, err := loadProducts(&cmd.Config{DataPath: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

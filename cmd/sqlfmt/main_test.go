package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfmt.yml")
	assert.NoError(t, os.WriteFile(path, []byte("dialect: postgresql\n"), 0o644))

	cfg, err := loadFileConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "postgresql", cfg.Dialect)
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	assert.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0o644))

	src, err := readInput(path)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT 1", src)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	assert.NoError(t, os.WriteFile(path, []byte("select   1"), 0o644))

	opts := &options{Dialect: "generic", File: path, MaxDepth: 512}
	err := run(opts, nil)
	assert.NoError(t, err)
}

package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/gitops"
)

func TestRunInit_NoGit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	require.NoError(t, runInit(dir, true))

	// Config written with auto-commit disabled.
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.False(t, cfg.Git.AutoCommit)

	// Empty ledger seeded.
	data, err := os.ReadFile(filepath.Join(dir, "ledger.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"users"`)

	// Logs dir and .gitignore exist; no git repo.
	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.False(t, gitops.IsRepo(dir))
}

func TestRunInit_WithGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := filepath.Join(t.TempDir(), "project")

	require.NoError(t, runInit(dir, false))

	assert.True(t, gitops.IsRepo(dir))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)

	// The initial commit covers the seeded files.
	status := exec.Command("git", "status", "--porcelain")
	status.Dir = dir
	out, err := status.Output()
	require.NoError(t, err)
	assert.Empty(t, string(out), "work tree should be clean after init")
}

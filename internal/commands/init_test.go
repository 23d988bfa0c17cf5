package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initWorkspace(t *testing.T, name string) string {
	t.Helper()
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	dir := t.TempDir()
	require.NoError(t, runInit(dir, name))
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initWorkspace(t, "Test Workspace")

	for _, d := range []string{"datasets", "exports", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	_, err := os.Stat(filepath.Join(dir, "datasets", ".gitkeep"))
	require.NoError(t, err)
}

func TestInit_Config(t *testing.T) {
	dir := initWorkspace(t, "Q1 Payments Review")

	data, err := os.ReadFile(filepath.Join(dir, "paylens.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Q1 Payments Review")
	assert.Contains(t, contents, "payments: datasets/payments.csv")
}

func TestInit_GitRepo(t *testing.T) {
	dir := initWorkspace(t, "Test Workspace")

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init:")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Paylens <reports@paylens.dev>")
}

func TestInit_Gitignore(t *testing.T) {
	dir := initWorkspace(t, "Test Workspace")

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "*.tmp")
}

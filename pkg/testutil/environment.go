// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem, pkg/paths
// PURPOSE: Isolated repository + home directory trees for tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/stretchr/testify/require"
)

// Env is a throwaway repository and home directory pair
type Env struct {
	// Root contains both trees
	Root string
	// Repo plays the managed repository (dotdir)
	Repo string
	// Home plays the user's home directory
	Home string

	FS filesystem.FS

	t *testing.T
}

// NewEnv creates the directory layout and points HOME at it
func NewEnv(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	// macOS hands out /var/... which is itself a symlink to /private/var
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &Env{
		Root: root,
		Repo: filepath.Join(root, "repo"),
		Home: filepath.Join(root, "home"),
		FS:   filesystem.NewOS(),
		t:    t,
	}

	require.NoError(t, os.MkdirAll(env.Repo, 0755))
	require.NoError(t, os.MkdirAll(env.Home, 0755))

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv(paths.EnvConfig, "")

	return env
}

// Resolver returns a resolver rooted at the fake home directory
func (e *Env) Resolver() *paths.Resolver {
	r := paths.NewResolver(e.Home)
	r.LookupEnv = func(string) (string, bool) { return "", false }
	return r
}

// RepoPath joins rel onto the repository directory
func (e *Env) RepoPath(rel string) string {
	return filepath.Join(e.Repo, filepath.FromSlash(rel))
}

// HomePath joins rel onto the home directory
func (e *Env) HomePath(rel string) string {
	return filepath.Join(e.Home, filepath.FromSlash(rel))
}

// WriteFile writes content to path, creating parent directories
func (e *Env) WriteFile(path, content string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteRepoFile writes a file inside the repository
func (e *Env) WriteRepoFile(rel, content string) string {
	e.t.Helper()
	return e.WriteFile(e.RepoPath(rel), content)
}

// Symlink creates link pointing at target, creating parent directories
func (e *Env) Symlink(target, link string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(e.t, os.Symlink(target, link))
}

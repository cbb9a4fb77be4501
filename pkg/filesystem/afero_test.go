package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, os.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))
	info, err = fsys.Stat(subDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS_Symlinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	require.NoError(t, fsys.Symlink(target, link))

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink, "Lstat should not follow the link")

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&fs.ModeSymlink, "Stat should follow the link")

	got, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	require.NoError(t, fsys.Remove(link))
	_, err = fsys.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(target)
	assert.NoError(t, err, "removing the link must not remove its target")
}

func TestNewOS_DanglingSymlink(t *testing.T) {
	fsys := NewOS()
	link := filepath.Join(t.TempDir(), "dangling")

	require.NoError(t, fsys.Symlink("/nonexistent/target", link))

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink)
}

func TestReadFile_Directory(t *testing.T) {
	_, err := NewOS().ReadFile(t.TempDir())
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

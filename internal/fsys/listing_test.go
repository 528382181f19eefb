package fsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSortsDirectoriesFirst(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.info"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.SlackBuild"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "patches"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "doc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "b.info"), filepath.Join(root, "link")))

	entries, err := OS{}.List(root)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "doc", Type: TypeDir},
		{Name: "patches", Type: TypeDir},
		{Name: "a.SlackBuild", Type: TypeFile},
		{Name: "b.info", Type: TypeFile},
		{Name: "link", Type: TypeLink},
	}, entries)

	entries, err = OS{ShowHidden: true}.List(root)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestListErrors(t *testing.T) {
	root := t.TempDir()
	_, err := OS{}.List(root)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = OS{}.List(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = OS{}.List(file)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestUp(t *testing.T) {
	parent, err := Up("/var/lib/sbopkg/SBo/audio/")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/sbopkg/SBo", parent)

	_, err = Up("/")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestReadFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "README")
	require.NoError(t, os.WriteFile(file, []byte("hello\n"), 0o644))

	text, err := OS{}.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text)

	_, err = OS{}.ReadFile(root)
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = OS{}.ReadFile(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

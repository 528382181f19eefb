package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureWritesInfoFile(t *testing.T) {
	f := NewFixture(t)
	dir := f.AddBuild("multimedia", "ffmpeg", "6.1.1", "lame", "x264")
	assert.Equal(t, filepath.Join(f.RepoDir, "multimedia", "ffmpeg"), dir)

	data, err := os.ReadFile(filepath.Join(dir, "ffmpeg.info"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `REQUIRES="lame x264"`)
	assert.Contains(t, string(data), `VERSION="6.1.1"`)
}

func TestFixtureInstallReplacesPreviousVersion(t *testing.T) {
	f := NewFixture(t)
	f.Install("lame", "3.99")
	f.Install("lame-extra", "1.0")
	f.Install("lame", "3.100")

	entries, err := os.ReadDir(f.PackageLogDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{PackageID("lame", "3.100"), PackageID("lame-extra", "1.0")}, names)

	f.Remove("lame")
	_, err = os.Stat(filepath.Join(f.PackageLogDir, PackageID("lame", "3.100")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

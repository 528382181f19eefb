package backend

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/sbbrowse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

type recordingRunner struct {
	commands []string
	err      error
}

func (r *recordingRunner) Run(_ context.Context, command string) (string, error) {
	r.commands = append(r.commands, command)
	return "", r.err
}

func newTestRepo(t *testing.T) (*Repo, *recordingRunner, Config) {
	t.Helper()
	f := testutil.NewFixture(t)
	cfg := Config{
		RepoDir:       f.RepoDir,
		PackageLogDir: f.PackageLogDir,
		BlacklistFile: f.BlacklistFile,
		SyncCommand:   "sbocheck",
	}
	f.AddBuild("audio", "lame", "3.100")
	f.AddBuild("multimedia", "ffmpeg", "6.1.1", "lame")
	f.AddBuild("multimedia", "vlc", "3.0.20", "ffmpeg")
	f.AddFile("multimedia", "ffmpeg", "README", "ffmpeg readme\n")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.RepoDir, "multimedia", "empty"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.RepoDir, ".git"), 0o755))
	f.Install("lame", "3.100")
	f.Install("ffmpeg", "6.0")
	f.Blacklist("vlc")
	runner := &recordingRunner{}
	return NewRepo(cfg, runner), runner, cfg
}

func TestRepoPackagesJoinsLocalState(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	c, err := repo.Packages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"audio", "multimedia"}, c.Categories)
	assert.Equal(t, []string{"lame", "ffmpeg", "vlc"}, names(c.Packages))

	lame, _ := c.Lookup("lame")
	assert.True(t, lame.Installed)
	assert.False(t, lame.Upgradable)

	ffmpeg, _ := c.Lookup("ffmpeg")
	assert.True(t, ffmpeg.Installed)
	assert.True(t, ffmpeg.Upgradable)
	assert.Equal(t, "6.0", ffmpeg.InstalledVersion)
	assert.Equal(t, []string{"lame"}, ffmpeg.Requires)

	vlc, _ := c.Lookup("vlc")
	assert.False(t, vlc.Installed)
	assert.True(t, vlc.Blacklisted)
}

func TestRepoQueriesUseLastScan(t *testing.T) {
	repo, _, cfg := newTestRepo(t)
	_, err := repo.BuildOrder("vlc")
	assert.ErrorIs(t, err, ErrUnknownPackage, "nothing scanned yet")

	_, err = repo.Packages(context.Background())
	require.NoError(t, err)

	order, err := repo.BuildOrder("vlc")
	require.NoError(t, err)
	assert.Equal(t, []string{"lame", "ffmpeg", "vlc"}, names(order.Packages))

	inverse, err := repo.InverseDeps("lame")
	require.NoError(t, err)
	assert.Equal(t, []string{"ffmpeg"}, names(inverse))

	dir, err := repo.PackageDir("ffmpeg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.RepoDir, "multimedia", "ffmpeg"), dir)

	readme, err := repo.Readme("ffmpeg")
	require.NoError(t, err)
	assert.Equal(t, "ffmpeg readme\n", readme)

	_, err = repo.Readme("lame")
	assert.Error(t, err)

	info, err := repo.Info("ffmpeg")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Name:        ffmpeg",
		"Category:    multimedia",
		"Version:     6.1.1",
		"Installed:   6.0",
		"Requires:    lame",
		"Email:       maintainer@example.org",
		"Homepage:    https://example.org/ffmpeg",
		"Maintainer:  Test Maintainer",
	}, "\n"), info)
}

func TestFormatInfoPadsToWidestLabel(t *testing.T) {
	info := FormatInfo(Package{Name: "vlc", Category: "multimedia", Version: "3.0.20", Blacklisted: true})
	assert.Equal(t, strings.Join([]string{
		"Name:         vlc",
		"Category:     multimedia",
		"Version:      3.0.20",
		"Installed:    no",
		"Requires:     (none)",
		"Blacklisted:  yes",
	}, "\n"), info)
}

func TestRepoMissingRepositoryFails(t *testing.T) {
	repo := NewRepo(Config{RepoDir: filepath.Join(t.TempDir(), "absent")}, &recordingRunner{})
	_, err := repo.Packages(context.Background())
	assert.Error(t, err)
}

func TestReadInstalledMissingDirIsEmpty(t *testing.T) {
	installed, err := ReadInstalled(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, installed)
}

func TestExecuteExpandsTemplates(t *testing.T) {
	repo, runner, _ := newTestRepo(t)
	pkg := Package{Name: "ffmpeg", Version: "6.1.1", Category: "multimedia", Dir: "/repo/multimedia/ffmpeg"}
	require.NoError(t, repo.Execute(context.Background(), ActionUpgrade, pkg))
	require.NoError(t, repo.Execute(context.Background(), ActionRemove, pkg))
	require.NoError(t, repo.Sync(context.Background()))
	assert.Equal(t, []string{"sboupgrade -r ffmpeg", "removepkg ffmpeg", "sbocheck"}, runner.commands)

	runner.err = errors.New("exit status 1")
	err := repo.Execute(context.Background(), ActionInstall, pkg)
	assert.ErrorContains(t, err, "install ffmpeg")
}

func TestExpand(t *testing.T) {
	pkg := Package{Name: "ffmpeg", Version: "6.1.1", Category: "multimedia", Dir: "/r/multimedia/ffmpeg"}
	assert.Equal(t, "cd /r/multimedia/ffmpeg && build multimedia/ffmpeg-6.1.1",
		Expand("cd {dir} && build {category}/{name}-{version}", pkg))
}

func TestCommanderBuildsShellProcess(t *testing.T) {
	repo := NewRepo(Config{Shell: "/bin/bash", SyncCommand: "sbocheck"}, nil)
	cmd, err := repo.Command(ActionReinstall, Package{Name: "lame"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/bin/bash", "-c", "sboinstall -r --reinstall lame"}, cmd.Args)

	cmd, err = repo.SyncCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"/bin/bash", "-c", "sbocheck"}, cmd.Args)

	_, err = NewRepo(Config{}, nil).SyncCommand()
	assert.Error(t, err)
}

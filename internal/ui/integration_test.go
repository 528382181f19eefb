package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/testutil"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backgroundRepo hides the Commander side of backend.Repo so actions run
// through its runner instead of the terminal.
type backgroundRepo struct {
	backend.Source
}

// fixtureRunner applies sbotools commands to the fixture's package log.
type fixtureRunner struct {
	fixture  *testutil.Fixture
	versions map[string]string
	commands []string
}

func (r *fixtureRunner) Run(_ context.Context, command string) (string, error) {
	r.commands = append(r.commands, command)
	fields := strings.Fields(command)
	name := fields[len(fields)-1]
	switch fields[0] {
	case "removepkg":
		r.fixture.Remove(name)
	case "sboinstall", "sboupgrade":
		r.fixture.Install(name, r.versions[name])
	}
	return "", nil
}

func newRepoHarness(t *testing.T) (*Harness, *fixtureRunner, *testutil.Fixture) {
	t.Helper()
	f := testutil.NewFixture(t)
	f.AddBuild("audio", "lame", "3.100")
	f.AddBuild("multimedia", "ffmpeg", "6.1.1", "lame")
	f.AddBuild("multimedia", "vlc", "3.0.20", "ffmpeg")
	f.AddFile("multimedia", "ffmpeg", "README", "ffmpeg is a multimedia framework.\n")
	f.Install("lame", "3.100")
	f.Install("ffmpeg", "6.0")
	f.Blacklist("vlc")

	runner := &fixtureRunner{
		fixture:  f,
		versions: map[string]string{"lame": "3.100", "ffmpeg": "6.1.1", "vlc": "3.0.20"},
	}
	repo := backend.NewRepo(backend.Config{
		RepoDir:       f.RepoDir,
		PackageLogDir: f.PackageLogDir,
		BlacklistFile: f.BlacklistFile,
	}, runner)
	h := NewHarness(NewModel(backgroundRepo{repo}, nil, Options{Width: 80, Height: 24}))
	h.Init()
	require.NotNil(t, h.Model().catalog)
	return h, runner, f
}

func TestRepoBrowseFilesOpensReadme(t *testing.T) {
	h, _, _ := newRepoHarness(t)
	m := h.Model()

	press(h, tea.KeyDown, tea.KeyEnter, tea.KeyEnter)
	require.Equal(t, "ffmpeg", m.topDialog().title)

	h.Send(keyRunes("b"))
	files, ok := m.topDialog().widget.(*widget.DirListBox)
	require.True(t, ok)
	var names []string
	for _, item := range files.Items() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"README", "ffmpeg.info"}, names)

	press(h, tea.KeyEnter)
	view, ok := m.topDialog().widget.(*widget.TextView)
	require.True(t, ok)
	assert.Equal(t, "README", view.Title())
	assert.Contains(t, h.View(), "ffmpeg is a multimedia framework.")

	press(h, tea.KeyEsc, tea.KeyEsc)
	require.Len(t, m.dialogs, 1)
	assert.Equal(t, "ffmpeg", m.topDialog().title)
}

func TestRepoUpgradeUpdatesPackageLog(t *testing.T) {
	h, runner, _ := newRepoHarness(t)
	m := h.Model()

	ffmpeg, ok := m.catalog.Lookup("ffmpeg")
	require.True(t, ok)
	require.True(t, ffmpeg.Upgradable)

	press(h, tea.KeyDown, tea.KeyEnter, tea.KeyEnter)
	h.Send(keyRunes("u"))
	assert.Equal(t, "Upgrade ffmpeg?\n\nBuild order: lame ffmpeg", topMessage(t, h))
	press(h, tea.KeyEnter)

	assert.Equal(t, []string{"sboupgrade -r ffmpeg"}, runner.commands)
	assert.Empty(t, m.dialogs)
	assert.Contains(t, h.View(), "Upgraded ffmpeg")

	ffmpeg, ok = m.catalog.Lookup("ffmpeg")
	require.True(t, ok)
	assert.False(t, ffmpeg.Upgradable)
	assert.Equal(t, "6.1.1", ffmpeg.InstalledVersion)
}

func TestRepoBatchRemoveSkipsBlacklist(t *testing.T) {
	h, runner, _ := newRepoHarness(t)
	m := h.Model()

	vlc, ok := m.catalog.Lookup("vlc")
	require.True(t, ok)
	assert.True(t, vlc.Blacklisted)

	h.Send(keyRunes("T"))
	h.Send(keyRunes("r"))
	assert.Contains(t, topMessage(t, h), "Remove 2 tagged SlackBuild(s)?\n\nlame ffmpeg")
	press(h, tea.KeyEnter)

	assert.Equal(t, []string{"removepkg lame", "removepkg ffmpeg"}, runner.commands)
	assert.Equal(t, "Removed: 2", topMessage(t, h))
	for _, name := range []string{"lame", "ffmpeg"} {
		pkg, ok := m.catalog.Lookup(name)
		require.True(t, ok)
		assert.False(t, pkg.Installed, name)
	}
}

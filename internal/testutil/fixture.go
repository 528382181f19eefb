// Package testutil builds on-disk SlackBuild repositories for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture is a temporary repository tree, package log and blacklist. Nothing
// exists on disk until a build, package or blacklist entry is added.
type Fixture struct {
	RepoDir       string
	PackageLogDir string
	BlacklistFile string

	t *testing.T
}

// NewFixture lays a fixture out under t.TempDir().
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	root := t.TempDir()
	return &Fixture{
		RepoDir:       filepath.Join(root, "repo"),
		PackageLogDir: filepath.Join(root, "packages"),
		BlacklistFile: filepath.Join(root, "blacklist"),
		t:             t,
	}
}

// AddBuild writes <category>/<name>/<name>.info and returns the build
// directory. Requirements are space separated in the REQUIRES field.
func (f *Fixture) AddBuild(category, name, version string, requires ...string) string {
	f.t.Helper()
	dir := filepath.Join(f.RepoDir, category, name)
	var b strings.Builder
	fmt.Fprintf(&b, "PRGNAM=%q\n", name)
	fmt.Fprintf(&b, "VERSION=%q\n", version)
	fmt.Fprintf(&b, "HOMEPAGE=%q\n", "https://example.org/"+name)
	fmt.Fprintf(&b, "REQUIRES=%q\n", strings.Join(requires, " "))
	fmt.Fprintf(&b, "MAINTAINER=%q\n", "Test Maintainer")
	fmt.Fprintf(&b, "EMAIL=%q\n", "maintainer@example.org")
	WriteFile(f.t, filepath.Join(dir, name+".info"), b.String())
	return dir
}

// AddFile writes a file inside the build directory of name.
func (f *Fixture) AddFile(category, name, file, content string) string {
	f.t.Helper()
	path := filepath.Join(f.RepoDir, category, name, file)
	WriteFile(f.t, path, content)
	return path
}

// Install records name at version in the package log.
func (f *Fixture) Install(name, version string) {
	f.t.Helper()
	f.Remove(name)
	WriteFile(f.t, filepath.Join(f.PackageLogDir, PackageID(name, version)), "PACKAGE NAME: "+PackageID(name, version)+"\n")
}

// Remove deletes every package log entry of name.
func (f *Fixture) Remove(name string) {
	f.t.Helper()
	matches, err := filepath.Glob(filepath.Join(f.PackageLogDir, name+"-*-*-*"))
	if err != nil {
		f.t.Fatalf("glob package log: %v", err)
	}
	for _, path := range matches {
		if strings.Count(strings.TrimPrefix(filepath.Base(path), name+"-"), "-") != 2 {
			continue
		}
		if err := os.Remove(path); err != nil {
			f.t.Fatalf("remove %s: %v", path, err)
		}
	}
}

// Blacklist replaces the blacklist with one pattern per line.
func (f *Fixture) Blacklist(patterns ...string) {
	f.t.Helper()
	WriteFile(f.t, f.BlacklistFile, strings.Join(patterns, "\n")+"\n")
}

// PackageID is the package log name of a SlackBuild package.
func PackageID(name, version string) string {
	return fmt.Sprintf("%s-%s-x86_64-1_SBo", name, version)
}

// WriteFile creates path and its parents or fails the test.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gobwas/glob"
)

// Blacklist holds glob patterns of packages that must not be modified.
// Patterns match either the bare name or name-version.
type Blacklist struct {
	patterns []string
	globs    []glob.Glob
}

// ParseBlacklist reads one pattern per line; blank lines and # comments are
// skipped.
func ParseBlacklist(r io.Reader) (*Blacklist, error) {
	b := &Blacklist{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := glob.Compile(line)
		if err != nil {
			return nil, fmt.Errorf("blacklist pattern %q: %w", line, err)
		}
		b.patterns = append(b.patterns, line)
		b.globs = append(b.globs, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}
	return b, nil
}

// LoadBlacklist reads path. A missing file is an empty blacklist.
func LoadBlacklist(path string) (*Blacklist, error) {
	if strings.TrimSpace(path) == "" {
		return &Blacklist{}, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Blacklist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open blacklist: %w", err)
	}
	defer f.Close()
	return ParseBlacklist(f)
}

// Patterns returns the raw patterns.
func (b *Blacklist) Patterns() []string { return b.patterns }

// Matches reports whether pkg is blacklisted.
func (b *Blacklist) Matches(pkg Package) bool {
	if b == nil {
		return false
	}
	candidates := []string{pkg.Name, pkg.Name + "-" + pkg.Version}
	if pkg.InstalledVersion != "" && pkg.InstalledVersion != pkg.Version {
		candidates = append(candidates, pkg.Name+"-"+pkg.InstalledVersion)
	}
	for _, g := range b.globs {
		for _, candidate := range candidates {
			if g.Match(candidate) {
				return true
			}
		}
	}
	return false
}

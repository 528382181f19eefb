package backend

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const readmeMarker = "%README%"

// ParseInfo reads a .info file: shell assignments of the form KEY="value".
// Values may continue over several lines, either inside open quotes or after
// a trailing backslash; continued lines are joined with single spaces.
func ParseInfo(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	var logical strings.Builder
	lineNo := 0
	flush := func() error {
		line := strings.TrimSpace(logical.String())
		logical.Reset()
		if line == "" || strings.HasPrefix(line, "#") {
			return nil
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("parse info line %d: missing '='", lineNo)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.TrimPrefix(value, `"`)
		value = strings.TrimSuffix(value, `"`)
		values[key] = strings.Join(strings.Fields(value), " ")
		return nil
	}
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		continued := strings.HasSuffix(strings.TrimRight(line, " \t"), `\`)
		if continued {
			line = strings.TrimSuffix(strings.TrimRight(line, " \t"), `\`)
		}
		if logical.Len() > 0 {
			logical.WriteByte(' ')
		}
		logical.WriteString(line)
		if continued || strings.Count(logical.String(), `"`)%2 == 1 {
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read info: %w", err)
	}
	if logical.Len() > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// splitRequires turns a REQUIRES value into names.
func splitRequires(value string) []string {
	return strings.Fields(value)
}

// InstalledPackage is one entry of the package log directory.
type InstalledPackage struct {
	Name    string
	Version string
	Arch    string
	Build   string
}

// ParsePackageID splits a package log name (name-version-arch-build).
func ParsePackageID(id string) (InstalledPackage, bool) {
	parts := strings.Split(id, "-")
	if len(parts) < 4 {
		return InstalledPackage{}, false
	}
	n := len(parts)
	pkg := InstalledPackage{
		Name:    strings.Join(parts[:n-3], "-"),
		Version: parts[n-3],
		Arch:    parts[n-2],
		Build:   parts[n-1],
	}
	if pkg.Name == "" || pkg.Version == "" {
		return InstalledPackage{}, false
	}
	return pkg, true
}

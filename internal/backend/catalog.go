package backend

import (
	"fmt"
	"sort"
)

// Catalog is a snapshot of the repository joined with local state.
type Catalog struct {
	Categories []string
	Packages   []Package
	index      map[string]int
}

// NewCatalog sorts packages by category then name and indexes them.
func NewCatalog(packages []Package) *Catalog {
	sorted := append([]Package(nil), packages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].Name < sorted[j].Name
	})
	c := &Catalog{Packages: sorted, index: make(map[string]int, len(sorted))}
	seen := map[string]bool{}
	for i, pkg := range sorted {
		c.index[pkg.Name] = i
		if !seen[pkg.Category] {
			seen[pkg.Category] = true
			c.Categories = append(c.Categories, pkg.Category)
		}
	}
	return c
}

// Lookup finds a package by name.
func (c *Catalog) Lookup(name string) (Package, bool) {
	if c == nil {
		return Package{}, false
	}
	idx, ok := c.index[name]
	if !ok {
		return Package{}, false
	}
	return c.Packages[idx], true
}

// InCategory returns the packages of category in name order.
func (c *Catalog) InCategory(category string) []Package {
	var out []Package
	for _, pkg := range c.Packages {
		if pkg.Category == category {
			out = append(out, pkg)
		}
	}
	return out
}

// Order is a build order: dependencies first, the requested package last.
type Order struct {
	Packages []Package
	// Missing lists required names that are not in the repository.
	Missing []string
}

// BuildOrder resolves the dependency closure of name. Cycles are broken at
// the first repeated package.
func (c *Catalog) BuildOrder(name string) (Order, error) {
	if _, ok := c.Lookup(name); !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrUnknownPackage, name)
	}
	var order Order
	visited := map[string]bool{}
	missing := map[string]bool{}
	var visit func(string)
	visit = func(n string) {
		if visited[n] {
			return
		}
		visited[n] = true
		pkg, ok := c.Lookup(n)
		if !ok {
			if !missing[n] {
				missing[n] = true
				order.Missing = append(order.Missing, n)
			}
			return
		}
		for _, req := range pkg.Requires {
			if req == readmeMarker {
				continue
			}
			visit(req)
		}
		order.Packages = append(order.Packages, pkg)
	}
	visit(name)
	return order, nil
}

// InverseDeps lists the packages that directly require name.
func (c *Catalog) InverseDeps(name string) ([]Package, error) {
	if _, ok := c.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, name)
	}
	var out []Package
	for _, pkg := range c.Packages {
		for _, req := range pkg.Requires {
			if req == name {
				out = append(out, pkg)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// IsDependency reports whether an installed package requires name.
func (c *Catalog) IsDependency(name string) bool {
	for _, pkg := range c.Packages {
		if !pkg.Installed {
			continue
		}
		for _, req := range pkg.Requires {
			if req == name {
				return true
			}
		}
	}
	return false
}

// SetBlacklisted updates the blacklist flag of every package.
func (c *Catalog) SetBlacklisted(b *Blacklist) {
	for i := range c.Packages {
		c.Packages[i].Blacklisted = b.Matches(c.Packages[i])
	}
}

package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Seeder fills a freshly allocated grid with its initial pattern. Seeders must
// be deterministic for a given seed.
type Seeder func(g *Grid, seed int64)

var seeders = map[string]Seeder{}

// RegisterSeeder adds a seeding policy under the provided name.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of seeding policies.
func Seeders() map[string]Seeder {
	return seeders
}

// SeederNames returns the registered policy names in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

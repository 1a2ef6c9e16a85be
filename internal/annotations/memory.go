package annotations

import (
	"maps"
	"sync"
)

// MemoryGateway is a Gateway kept entirely in memory. The import command's
// dry run applies a backup to a store over it; tests use it too.
type MemoryGateway struct {
	mu     sync.Mutex
	values map[string]string
	writes int
	err    error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{values: make(map[string]string)}
}

func (g *MemoryGateway) Load(key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", false, g.err
	}
	value, ok := g.values[key]
	return value, ok, nil
}

func (g *MemoryGateway) Save(values map[string]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	maps.Copy(g.values, values)
	g.writes++
	return nil
}

// Set stores a raw value without counting it as a write.
func (g *MemoryGateway) Set(key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[key] = value
}

// Snapshot returns a copy of everything stored.
func (g *MemoryGateway) Snapshot() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return maps.Clone(g.values)
}

// Writes reports how many Save calls succeeded.
func (g *MemoryGateway) Writes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writes
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (g *MemoryGateway) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// Package registry holds named configuration presets. Presets register
// themselves in init() functions so the CLI can list and apply them without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/termtris/internal/config"
)

// Apply derives a preset configuration from a loaded base configuration.
type Apply func(base config.TetrisConfig) config.TetrisConfig

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

type preset struct {
	title string
	apply Apply
}

var (
	presets = make(map[string]preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered.
func Register(id, title string, f Apply) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}
	presets[id] = preset{title: title, apply: f}
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for id, p := range presets {
		result = append(result, PresetInfo{ID: id, Title: p.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create applies the preset with the given ID to base.
// Returns an error if the preset ID is not registered.
func Create(id string, base config.TetrisConfig) (config.TetrisConfig, error) {
	mu.RLock()
	p, ok := presets[id]
	mu.RUnlock()

	if !ok {
		return base, fmt.Errorf("registry: unknown preset %q", id)
	}

	cfg := p.apply(base)
	cfg.Normalize()
	return cfg, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

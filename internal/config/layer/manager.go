package layer

import (
	"sort"
	"strings"

	"github.com/dshills/med/internal/config/loader"
)

// Manager manages configuration layers and provides merged access.
type Manager struct {
	layers []*Layer // Sorted by priority (ascending)
}

// NewManager creates a new layer manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddLayer adds a layer to the manager.
// Layers are kept sorted by priority; equal priorities keep insertion order.
func (m *Manager) AddLayer(layer *Layer) {
	m.layers = append(m.layers, layer)
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
}

// Layers returns a copy of all layers sorted by priority.
func (m *Manager) Layers() []*Layer {
	result := make([]*Layer, len(m.layers))
	copy(result, m.layers)
	return result
}

// Merge combines all layers into a single configuration map.
// Layer data is never modified.
func (m *Manager) Merge() map[string]any {
	result := make(map[string]any)
	for _, layer := range m.layers {
		result = loader.DeepMerge(result, cloneMap(layer.Data))
	}
	return result
}

// SourceOf returns the highest priority layer that sets the dot-separated
// path, or nil when no layer does.
func (m *Manager) SourceOf(path string) *Layer {
	for i := len(m.layers) - 1; i >= 0; i-- {
		if _, ok := lookup(m.layers[i].Data, path); ok {
			return m.layers[i]
		}
	}
	return nil
}

func lookup(data map[string]any, path string) (any, bool) {
	current := any(data)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// Package restricted stores the named definitions of one scope and
// enforces that at most one active definition exists per name.
package restricted

import (
	"fmt"
	"sort"
	"strings"
)

// Definition is anything that can be stored in a Manager.
type Definition interface {
	Name() string
	ModuleName() string
	DefinitionKind() string
	// IsForward reports whether the definition may still be replaced.
	IsForward() bool
}

// Manager is the per-scope definition store.
type Manager[D Definition] struct {
	kind        string
	definitions map[string]D
}

// NewManager returns an empty store for definitions of the given kind.
// The kind only appears in error messages.
func NewManager[D Definition](kind string) *Manager[D] {
	return &Manager[D]{
		kind:        kind,
		definitions: make(map[string]D),
	}
}

func validName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// AddDefinition stores d. A forward definition already stored under the
// same name is replaced; an active one makes AddDefinition fail.
func (m *Manager[D]) AddDefinition(d D) error {
	name := d.Name()
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if existing, ok := m.definitions[name]; ok && !existing.IsForward() {
		return NewMultipleDefinitionError(d.DefinitionKind(), existing.ModuleName(), name)
	}
	m.definitions[name] = d
	return nil
}

// GetDefinition returns the definition stored under name.
func (m *Manager[D]) GetDefinition(name string) (D, error) {
	var zero D
	if !validName(name) {
		return zero, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	d, ok := m.definitions[name]
	if !ok {
		return zero, NewNotFoundError(m.kind, name)
	}
	return d, nil
}

// Has reports whether a definition, forward or not, is stored under name.
func (m *Manager[D]) Has(name string) bool {
	_, ok := m.definitions[name]
	return ok
}

// Names returns the stored definition names, sorted.
func (m *Manager[D]) Names() []string {
	names := make([]string, 0, len(m.definitions))
	for name := range m.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

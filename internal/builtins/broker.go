// Package builtins supplies the system functions every scope starts with.
package builtins

import (
	"slices"

	"github.com/funvibe/myclips/internal/functions"
)

var systemDefinitions = []func() *functions.Definition{
	greaterThanDefinition,
	lessThanDefinition,
	greaterThanOrEqualDefinition,
	lessThanOrEqualDefinition,
	numEqualDefinition,
	numNotEqualDefinition,
}

// Broker is the built-in bootstrap handed to functions.NewRegistry.
type Broker struct {
	// Disabled names system functions that are left out.
	Disabled []string
}

// Definitions returns a fresh set of system function definitions on every
// call, so registries never share them.
func (b Broker) Definitions() map[string]*functions.Definition {
	defs := make(map[string]*functions.Definition, len(systemDefinitions))
	for _, build := range systemDefinitions {
		def := build()
		if slices.Contains(b.Disabled, def.Name()) {
			continue
		}
		defs[def.Name()] = def
	}
	return defs
}

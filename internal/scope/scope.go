// Package scope defines the module namespace that owns a function registry.
package scope

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/myclips/internal/functions"
)

// Scope is one module namespace. It owns exactly one function registry for
// its whole lifetime.
type Scope struct {
	ID         uuid.UUID
	moduleName string
	functions  *functions.Registry
}

// New creates the scope of moduleName with the system functions of bootstrap.
func New(moduleName string, bootstrap functions.Bootstrap, opts ...functions.Option) *Scope {
	s := &Scope{
		ID:         uuid.New(),
		moduleName: moduleName,
	}
	s.functions = functions.NewRegistry(s, bootstrap, opts...)
	return s
}

func (s *Scope) ModuleName() string { return s.moduleName }

// Functions returns the scope's function registry.
func (s *Scope) Functions() *functions.Registry { return s.functions }

func (s *Scope) String() string {
	return fmt.Sprintf("%s(%s)", s.moduleName, s.ID)
}

// ImportFunction makes from's definition of name available in s. A forward
// declaration imported this way is locked.
func (s *Scope) ImportFunction(from *Scope, name string) error {
	if from == s {
		return fmt.Errorf("cannot import %s into its own scope %s", name, s.moduleName)
	}
	def, err := from.functions.GetDefinition(name)
	if err != nil {
		return fmt.Errorf("importing %s from %s: %w", name, from.moduleName, err)
	}
	if def.ModuleName() != from.moduleName {
		return fmt.Errorf("importing %s from %s: defined in %s", name, from.moduleName, def.ModuleName())
	}
	return s.functions.AddDefinition(def)
}

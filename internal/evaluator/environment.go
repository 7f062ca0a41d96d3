package evaluator

import (
	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/scope"
)

// NewEnvironment returns an empty environment evaluating calls in s.
func NewEnvironment(s *scope.Scope) *Environment {
	return &Environment{store: make(map[string]ast.Value), scope: s}
}

// Environment binds variables to values and resolves calls against a scope.
// It is not safe for concurrent use.
type Environment struct {
	store map[string]ast.Value
	scope *scope.Scope
}

// Scope returns the scope calls are resolved in.
func (e *Environment) Scope() *scope.Scope { return e.scope }

// Get returns the value bound to the variable name (without the leading ?).
func (e *Environment) Get(name string) (ast.Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Set binds name, replacing any previous binding.
func (e *Environment) Set(name string, val ast.Value) ast.Value {
	e.store[name] = val
	return val
}

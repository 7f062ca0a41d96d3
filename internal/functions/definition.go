// Package functions holds function definitions, the constraints that validate
// a call's arguments, and the per-scope function registry.
package functions

import (
	"fmt"

	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/config"
	"github.com/funvibe/myclips/internal/typesystem"
)

// Environment is the evaluation context handed to a Handler.
type Environment interface {
	// Simplify reduces node to a value whose type is a subtype of one of
	// want, evaluating variables and nested calls. what names the argument
	// in error messages.
	Simplify(node ast.Node, what string, want ...typesystem.Type) (ast.Value, error)
}

// Handler implements a function. args are the raw call arguments, already
// accepted by the definition's constraints.
type Handler func(env Environment, args []ast.Node) (ast.Value, error)

// Validator is an extra check run after every constraint has passed. It
// reports a failure as (false, reason).
type Validator func(args []ast.Node) (bool, string)

// ForwardState tells whether a definition may still be replaced.
type ForwardState int

const (
	// Pending definitions are forward declarations and may be redefined.
	Pending ForwardState = iota
	// Locked definitions are final. There is no way back to Pending.
	Locked
)

func (s ForwardState) String() string {
	if s == Pending {
		return "pending"
	}
	return "locked"
}

// Definition describes one callable function. Everything except the forward
// state is fixed at construction.
type Definition struct {
	module      string
	name        string
	linkedType  typesystem.Type
	returnTypes []typesystem.Type
	constraints []Constraint
	handler     Handler
	validate    Validator
	state       ForwardState
}

// NewDefinition returns a forward (Pending) definition of name owned by module.
// It panics if returnTypes is empty.
func NewDefinition(module, name string, returnTypes []typesystem.Type, handler Handler, constraints ...Constraint) *Definition {
	if len(returnTypes) == 0 {
		panic(fmt.Sprintf("deffunction %s::%s declared without return types", module, name))
	}
	return &Definition{
		module:      module,
		name:        name,
		linkedType:  returnTypes[0],
		returnTypes: append([]typesystem.Type(nil), returnTypes...),
		constraints: append([]Constraint(nil), constraints...),
		handler:     handler,
		state:       Pending,
	}
}

// NewSystemDefinition returns a locked definition owned by the system pseudo-module.
func NewSystemDefinition(name string, returnTypes []typesystem.Type, handler Handler, constraints ...Constraint) *Definition {
	d := NewDefinition(config.SystemModuleName, name, returnTypes, handler, constraints...)
	d.state = Locked
	return d
}

// WithValidation returns a copy of d that runs v after its constraints.
func (d *Definition) WithValidation(v Validator) *Definition {
	cp := *d
	cp.validate = v
	return &cp
}

// WithLinkedType returns a copy of d with a different linked type.
func (d *Definition) WithLinkedType(t typesystem.Type) *Definition {
	cp := *d
	cp.linkedType = t
	return &cp
}

func (d *Definition) Name() string                { return d.name }
func (d *Definition) ModuleName() string          { return d.module }
func (d *Definition) DefinitionKind() string      { return config.DefFunctionKind }
func (d *Definition) LinkedType() typesystem.Type { return d.linkedType }
func (d *Definition) Handler() Handler            { return d.handler }
func (d *Definition) State() ForwardState         { return d.state }
func (d *Definition) IsForward() bool             { return d.state == Pending }

// ReturnTypes returns the types a call of this function may produce.
func (d *Definition) ReturnTypes() []typesystem.Type {
	return append([]typesystem.Type(nil), d.returnTypes...)
}

// Constraints returns the constraints in evaluation order.
func (d *Definition) Constraints() []Constraint {
	return append([]Constraint(nil), d.constraints...)
}

// Lock makes the definition final.
func (d *Definition) Lock() {
	d.state = Locked
}

// QualifiedName returns MODULE::name.
func (d *Definition) QualifiedName() string {
	return d.module + "::" + d.name
}

// IsValidCall checks args against the constraints in declared order and
// returns the reason of the first failing one. Constraints after it and the
// custom validation are not run.
func (d *Definition) IsValidCall(args []ast.Node) (bool, string) {
	for _, c := range d.constraints {
		if !c.IsValid(args) {
			return false, c.Reason()
		}
	}
	return d.customValidation(args)
}

func (d *Definition) customValidation(args []ast.Node) (bool, string) {
	if d.validate == nil {
		return true, ""
	}
	return d.validate(args)
}

// Call builds a call node for d, carrying its return types.
func (d *Definition) Call(args ...ast.Node) *ast.FunctionCall {
	return &ast.FunctionCall{Name: d.name, ReturnTypes: d.ReturnTypes(), Args: args}
}

// Package evaluator resolves argument nodes to values and runs function calls
// after their definitions have accepted the arguments.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/functions"
	"github.com/funvibe/myclips/internal/restricted"
	"github.com/funvibe/myclips/internal/typesystem"
)

var _ functions.Environment = (*Environment)(nil)

// Eval reduces node to a value.
func (e *Environment) Eval(node ast.Node) (ast.Value, error) {
	switch n := node.(type) {
	case ast.Value:
		return n, nil
	case *ast.Variable:
		v, ok := e.Get(n.Name)
		if !ok {
			return nil, &UnboundVariableError{Name: n.Name}
		}
		return v, nil
	case *ast.FunctionCall:
		return e.Call(n)
	default:
		return nil, fmt.Errorf("cannot evaluate %T", node)
	}
}

// Simplify evaluates node and checks that the result is of one of want.
func (e *Environment) Simplify(node ast.Node, what string, want ...typesystem.Type) (ast.Value, error) {
	v, err := e.Eval(node)
	if err != nil {
		return nil, err
	}
	if len(want) > 0 && !typesystem.AnySubtype(v.StaticType(), want) {
		return nil, typesystem.NewMismatchError(what, v.StaticType(), want...)
	}
	return v, nil
}

// Call looks up call.Name in the scope, validates the raw arguments and runs
// the handler. Arguments are not evaluated before validation.
func (e *Environment) Call(call *ast.FunctionCall) (ast.Value, error) {
	registry := e.scope.Functions()

	def, err := registry.GetDefinition(call.Name)
	if errors.Is(err, restricted.ErrNotFound) {
		return nil, &UndefinedFunctionError{Name: call.Name}
	}
	if err != nil {
		return nil, err
	}
	if !registry.Has(call.Name) {
		return nil, &UndefinedFunctionError{Name: call.Name, Forward: true}
	}

	if ok, reason := def.IsValidCall(call.Args); !ok {
		return nil, &InvalidCallError{Function: call.Name, Reason: reason}
	}

	handler := def.Handler()
	if handler == nil {
		return nil, fmt.Errorf("function %s has no implementation", def.QualifiedName())
	}
	result, err := handler(e, call.Args)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", call.Name, err)
	}
	if result == nil {
		return nil, fmt.Errorf("function %s returned no value", call.Name)
	}
	if !typesystem.AnySubtype(result.StaticType(), def.ReturnTypes()) {
		return nil, &ReturnTypeError{Function: call.Name, Got: result.StaticType().String()}
	}
	return result, nil
}

// NewCall builds a call node of name carrying the return types the scope
// declares for it, or none if name is not defined yet.
func (e *Environment) NewCall(name string, args ...ast.Node) *ast.FunctionCall {
	def, err := e.scope.Functions().GetDefinition(name)
	if err != nil {
		return &ast.FunctionCall{Name: name, Args: args}
	}
	return def.Call(args...)
}

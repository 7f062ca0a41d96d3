package functions

import (
	"fmt"

	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/typesystem"
)

// Constraint is a predicate over a call's raw argument list.
type Constraint interface {
	IsValid(args []ast.Node) bool
	// Reason describes the failure reported when IsValid is false.
	Reason() string
}

// MinArgCount requires at least n arguments.
type MinArgCount int

func (n MinArgCount) IsValid(args []ast.Node) bool { return len(args) >= int(n) }
func (n MinArgCount) Reason() string {
	return fmt.Sprintf("expected at least %d argument(s)", int(n))
}

// MaxArgCount allows at most n arguments.
type MaxArgCount int

func (n MaxArgCount) IsValid(args []ast.Node) bool { return len(args) <= int(n) }
func (n MaxArgCount) Reason() string {
	return fmt.Sprintf("expected no more than %d argument(s)", int(n))
}

// ExactArgCount requires exactly n arguments.
type ExactArgCount int

func (n ExactArgCount) IsValid(args []ast.Node) bool { return len(args) == int(n) }
func (n ExactArgCount) Reason() string {
	return fmt.Sprintf("expected exactly %d argument(s)", int(n))
}

type selectorKind int

const (
	selectAll selectorKind = iota
	selectIndex
	selectRange
)

// Selector picks the arguments an ArgTypeCheck inspects.
type Selector struct {
	kind     selectorKind
	from, to int
}

// All selects every argument.
var All = Selector{kind: selectAll}

// Index selects the argument at the 0-based position i.
func Index(i int) Selector {
	return Selector{kind: selectIndex, from: i, to: i + 1}
}

// Range selects the arguments in the 0-based half-open interval [from, to).
// It panics if the interval is empty or starts before 0.
func Range(from, to int) Selector {
	if from < 0 || to <= from {
		panic(fmt.Sprintf("functions: invalid argument range [%d, %d)", from, to))
	}
	return Selector{kind: selectRange, from: from, to: to}
}

// String renders the selector as it appears in reasons: #ALL, #2 or #2-3
// (1-based, inclusive). A one-argument range renders like an index.
func (s Selector) String() string {
	switch s.kind {
	case selectIndex:
		return fmt.Sprintf("#%d", s.from+1)
	case selectRange:
		if s.to == s.from+1 {
			return fmt.Sprintf("#%d", s.to)
		}
		return fmt.Sprintf("#%d-%d", s.from+1, s.to)
	default:
		return "#ALL"
	}
}

// ArgTypeCheck requires the selected arguments to be of one of Types.
// Variables are accepted since their type is only known at run time, and a
// nested call is accepted when one of its declared return types fits.
// Required tells whether a selected argument missing from the call is a
// failure.
type ArgTypeCheck struct {
	Types    []typesystem.Type
	Selector Selector
	Required bool
}

// ArgType returns an ArgTypeCheck of sel against types.
func ArgType(sel Selector, required bool, types ...typesystem.Type) ArgTypeCheck {
	return ArgTypeCheck{Types: types, Selector: sel, Required: required}
}

func (c ArgTypeCheck) Reason() string {
	return fmt.Sprintf("expected argument %s to be of type %s", c.Selector, typesystem.Names(c.Types, " or "))
}

func (c ArgTypeCheck) IsValid(args []ast.Node) bool {
	switch c.Selector.kind {
	case selectIndex:
		i := c.Selector.from
		if i < 0 || i >= len(args) {
			return !c.Required
		}
		return c.accepts(args[i])

	case selectRange:
		from, to := c.Selector.from, c.Selector.to
		missing := to > len(args)
		if from > len(args) {
			from = len(args)
		}
		if to > len(args) {
			to = len(args)
		}
		if !c.acceptsAll(args[from:to]) {
			return false
		}
		return !missing || !c.Required

	default:
		return c.acceptsAll(args)
	}
}

func (c ArgTypeCheck) acceptsAll(args []ast.Node) bool {
	for _, arg := range args {
		if !c.accepts(arg) {
			return false
		}
	}
	return true
}

func (c ArgTypeCheck) accepts(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Variable:
		return true
	case *ast.FunctionCall:
		for _, rt := range n.ReturnTypes {
			if typesystem.AnySubtype(rt, c.Types) {
				return true
			}
		}
		return false
	case ast.Value:
		return typesystem.AnySubtype(n.StaticType(), c.Types)
	default:
		return false
	}
}

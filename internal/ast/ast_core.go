package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/myclips/internal/typesystem"
)

// Node is the base interface for all argument nodes. The set of
// implementations is closed.
type Node interface {
	String() string
	node()
}

// Value is a Node with a type known before evaluation.
type Value interface {
	Node
	StaticType() typesystem.Type
}

// Integer is an integer literal.
type Integer struct {
	Value int64
}

func (i *Integer) node()                       {}
func (i *Integer) String() string              { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) StaticType() typesystem.Type { return typesystem.Integer }

// Float is a floating point literal.
type Float struct {
	Value float64
}

func (f *Float) node() {}
func (f *Float) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
func (f *Float) StaticType() typesystem.Type { return typesystem.Float }

// Symbol is a bare word such as TRUE or red.
type Symbol struct {
	Value string
}

func (s *Symbol) node()                       {}
func (s *Symbol) String() string              { return s.Value }
func (s *Symbol) StaticType() typesystem.Type { return typesystem.Symbol }

// String is a quoted string literal.
type String struct {
	Value string
}

func (s *String) node()                       {}
func (s *String) String() string              { return strconv.Quote(s.Value) }
func (s *String) StaticType() typesystem.Type { return typesystem.String }

// Variable is a single-field variable reference (?name). Its type is only
// known once it is bound.
type Variable struct {
	Name string
}

func (v *Variable) node()          {}
func (v *Variable) String() string { return "?" + v.Name }

// FunctionCall is a nested call. ReturnTypes is copied from the callee's
// definition when the call is parsed, so validation can reason about it
// without evaluating the call.
type FunctionCall struct {
	Name        string
	ReturnTypes []typesystem.Type
	Args        []Node
}

func (fc *FunctionCall) node() {}
func (fc *FunctionCall) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(fc.Name)
	for _, arg := range fc.Args {
		b.WriteString(" ")
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

// Boolean symbols.
var (
	TRUE  = &Symbol{Value: "TRUE"}
	FALSE = &Symbol{Value: "FALSE"}
)

// Bool returns the boolean symbol for b.
func Bool(b bool) *Symbol {
	if b {
		return TRUE
	}
	return FALSE
}

// Resolve returns the Go primitive behind a value: int64, float64 or string.
func Resolve(v Value) any {
	switch vv := v.(type) {
	case *Integer:
		return vv.Value
	case *Float:
		return vv.Value
	case *Symbol:
		return vv.Value
	case *String:
		return vv.Value
	default:
		panic(fmt.Sprintf("ast: cannot resolve %T", v))
	}
}

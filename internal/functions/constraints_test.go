package functions

import (
	"testing"

	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/typesystem"
)

func nodes(ns ...ast.Node) []ast.Node { return ns }

func TestArgCountConstraints(t *testing.T) {
	two := nodes(&ast.Integer{Value: 1}, &ast.Integer{Value: 2})

	tests := []struct {
		name       string
		c          Constraint
		args       []ast.Node
		want       bool
		wantReason string
	}{
		{"min ok", MinArgCount(2), two, true, "expected at least 2 argument(s)"},
		{"min fail", MinArgCount(3), two, false, "expected at least 3 argument(s)"},
		{"min zero on empty", MinArgCount(0), nil, true, "expected at least 0 argument(s)"},
		{"max ok", MaxArgCount(2), two, true, "expected no more than 2 argument(s)"},
		{"max fail", MaxArgCount(1), two, false, "expected no more than 1 argument(s)"},
		{"exact ok", ExactArgCount(2), two, true, "expected exactly 2 argument(s)"},
		{"exact fail", ExactArgCount(1), two, false, "expected exactly 1 argument(s)"},
		{"exact zero on empty", ExactArgCount(0), nil, true, "expected exactly 0 argument(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsValid(tt.args); got != tt.want {
				t.Errorf("IsValid = %v, want %v", got, tt.want)
			}
			if got := tt.c.Reason(); got != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestArgTypeCheck(t *testing.T) {
	numberCall := &ast.FunctionCall{Name: "+", ReturnTypes: []typesystem.Type{typesystem.Number}}
	integerCall := &ast.FunctionCall{Name: "length", ReturnTypes: []typesystem.Type{typesystem.Integer}}
	symbolCall := &ast.FunctionCall{Name: "sym-cat", ReturnTypes: []typesystem.Type{typesystem.Symbol}}
	mixedCall := &ast.FunctionCall{Name: "nth", ReturnTypes: []typesystem.Type{typesystem.Symbol, typesystem.Float}}

	one := &ast.Integer{Value: 1}
	half := &ast.Float{Value: 0.5}
	red := &ast.Symbol{Value: "red"}
	x := &ast.Variable{Name: "x"}

	tests := []struct {
		name string
		c    ArgTypeCheck
		args []ast.Node
		want bool
	}{
		{"all numbers", ArgType(All, true, typesystem.Number), nodes(one, half), true},
		{"all with a symbol", ArgType(All, true, typesystem.Number), nodes(one, red, half), false},
		{"all on empty", ArgType(All, true, typesystem.Number), nil, true},
		{"variable is deferred", ArgType(All, true, typesystem.Number), nodes(x, one), true},
		{"call returning exact type", ArgType(All, true, typesystem.Number), nodes(numberCall), true},
		{"call returning subtype", ArgType(All, true, typesystem.Number), nodes(integerCall), true},
		{"call returning supertype", ArgType(All, true, typesystem.Integer), nodes(numberCall), false},
		{"call returning other type", ArgType(All, true, typesystem.Number), nodes(symbolCall), false},
		{"call with one fitting type", ArgType(All, true, typesystem.Number), nodes(mixedCall), true},
		{"type set", ArgType(All, true, typesystem.Symbol, typesystem.Integer), nodes(red, one), true},
		{"type set miss", ArgType(All, true, typesystem.Symbol, typesystem.Integer), nodes(red, half), false},
		{"subtype literal", ArgType(All, true, typesystem.Number), nodes(one), true},
		{"supertype literal", ArgType(All, true, typesystem.Float), nodes(one), false},

		{"index ok", ArgType(Index(1), true, typesystem.Symbol), nodes(one, red), true},
		{"index fail", ArgType(Index(0), true, typesystem.Symbol), nodes(one, red), false},
		{"index ignores others", ArgType(Index(0), true, typesystem.Integer), nodes(one, red), true},
		{"index missing required", ArgType(Index(2), true, typesystem.Symbol), nodes(one, red), false},
		{"index missing optional", ArgType(Index(2), false, typesystem.Symbol), nodes(one, red), true},
		{"negative index optional", ArgType(Index(-1), false, typesystem.Symbol), nodes(one), true},

		{"range only inspects subrange", ArgType(Range(1, 3), true, typesystem.Number), nodes(red, one, half, red), true},
		{"range fail inside", ArgType(Range(0, 2), true, typesystem.Number), nodes(one, red, half), false},
		{"range past end required", ArgType(Range(1, 4), true, typesystem.Number), nodes(red, one), false},
		{"range past end optional", ArgType(Range(1, 4), false, typesystem.Number), nodes(red, one), true},
		{"range past end optional still checks", ArgType(Range(0, 4), false, typesystem.Number), nodes(red, one), false},
		{"range fully missing optional", ArgType(Range(3, 5), false, typesystem.Number), nodes(one), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsValid(tt.args); got != tt.want {
				t.Errorf("IsValid(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestArgTypeCheckReason(t *testing.T) {
	tests := []struct {
		c    ArgTypeCheck
		want string
	}{
		{ArgType(All, true, typesystem.Number), "expected argument #ALL to be of type Number"},
		{ArgType(Index(0), true, typesystem.Integer, typesystem.Float), "expected argument #1 to be of type Integer or Float"},
		{ArgType(Range(1, 3), true, typesystem.Symbol), "expected argument #2-3 to be of type Symbol"},
		{ArgType(Range(2, 3), true, typesystem.Symbol), "expected argument #3 to be of type Symbol"},
	}
	for _, tt := range tests {
		if got := tt.c.Reason(); got != tt.want {
			t.Errorf("Reason() = %q, want %q", got, tt.want)
		}
	}
}

func TestRangeRejectsEmptyInterval(t *testing.T) {
	for _, r := range [][2]int{{3, 3}, {4, 3}, {-1, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Range(%d, %d) should panic", r[0], r[1])
				}
			}()
			Range(r[0], r[1])
		}()
	}
}

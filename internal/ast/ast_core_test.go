package ast

import (
	"testing"

	"github.com/funvibe/myclips/internal/typesystem"
)

func TestString(t *testing.T) {
	call := &FunctionCall{
		Name: ">",
		Args: []Node{
			&Integer{Value: 5},
			&Float{Value: 3},
			&Variable{Name: "x"},
			&FunctionCall{Name: "<", Args: []Node{&Float{Value: 1.5}, &Symbol{Value: "a"}}},
			&String{Value: "hi"},
		},
	}
	want := `(> 5 3.0 ?x (< 1.5 a) "hi")`
	if got := call.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStaticType(t *testing.T) {
	tests := []struct {
		v    Value
		want typesystem.Type
	}{
		{&Integer{Value: 1}, typesystem.Integer},
		{&Float{Value: 1}, typesystem.Float},
		{&Symbol{Value: "a"}, typesystem.Symbol},
		{&String{Value: "a"}, typesystem.String},
	}
	for _, tt := range tests {
		if got := tt.v.StaticType(); got != tt.want {
			t.Errorf("%s.StaticType() = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(&Integer{Value: 7}); got != int64(7) {
		t.Errorf("Resolve(7) = %#v", got)
	}
	if got := Resolve(&Float{Value: 2.5}); got != 2.5 {
		t.Errorf("Resolve(2.5) = %#v", got)
	}
	if got := Resolve(TRUE); got != "TRUE" {
		t.Errorf("Resolve(TRUE) = %#v", got)
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != TRUE || Bool(false) != FALSE {
		t.Error("Bool should return the shared boolean symbols")
	}
}

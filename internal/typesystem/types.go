package typesystem

import "strings"

// Type is a primitive type tag of the rule language.
type Type interface {
	String() string
	// Parent returns the direct supertype, or nil for a root type.
	Parent() Type
}

// TCon is a named type constant.
type TCon struct {
	Name  string
	Super Type
}

func (t TCon) String() string { return t.Name }
func (t TCon) Parent() Type   { return t.Super }

// Built-in types. Number and Lexeme are roots: a value is never both.
var (
	Number  Type = TCon{Name: "Number"}
	Integer Type = TCon{Name: "Integer", Super: Number}
	Float   Type = TCon{Name: "Float", Super: Number}

	Lexeme Type = TCon{Name: "Lexeme"}
	Symbol Type = TCon{Name: "Symbol", Super: Lexeme}
	String Type = TCon{Name: "String", Super: Lexeme}
)

// IsSubtype reports whether t is of or a descendant of of. It is reflexive.
func IsSubtype(t, of Type) bool {
	for cur := t; cur != nil; cur = cur.Parent() {
		if cur == of {
			return true
		}
	}
	return false
}

// AnySubtype reports whether t is a subtype of at least one type in of.
func AnySubtype(t Type, of []Type) bool {
	for _, o := range of {
		if IsSubtype(t, o) {
			return true
		}
	}
	return false
}

// Names renders a type set, e.g. Names([Integer, Float], " or ") == "Integer or Float".
func Names(types []Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/myclips/internal/ast"
)

// parseWord turns one command-line word into an argument node.
func parseWord(word string) ast.Node {
	if strings.HasPrefix(word, "?") && len(word) > 1 {
		return &ast.Variable{Name: word[1:]}
	}
	if s, ok := parseString(word); ok {
		return s
	}
	return parseValue(word)
}

// parseString parses a double-quoted word, unescaping it when it is a valid
// Go string literal.
func parseString(word string) (*ast.String, bool) {
	if len(word) < 2 || !strings.HasPrefix(word, `"`) || !strings.HasSuffix(word, `"`) {
		return nil, false
	}
	if s, err := strconv.Unquote(word); err == nil {
		return &ast.String{Value: s}, true
	}
	return &ast.String{Value: word[1 : len(word)-1]}, true
}

// parseValue parses a literal: Integer, Float or Symbol.
func parseValue(word string) ast.Value {
	if i, err := strconv.ParseInt(word, 10, 64); err == nil {
		return &ast.Integer{Value: i}
	}
	if f, err := strconv.ParseFloat(word, 64); err == nil && strings.ContainsAny(word, "0123456789") {
		return &ast.Float{Value: f}
	}
	return &ast.Symbol{Value: word}
}

// parseBinding parses ?name=VALUE (the leading ? is optional).
func parseBinding(s string) (string, ast.Value, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimPrefix(name, "?")
	if !ok || name == "" || value == "" {
		return "", nil, fmt.Errorf("invalid binding %q, want ?name=VALUE", s)
	}
	if s, ok := parseString(value); ok {
		return name, s, nil
	}
	return name, parseValue(value), nil
}

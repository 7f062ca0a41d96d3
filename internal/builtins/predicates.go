package builtins

import (
	"cmp"
	"fmt"
	"math"

	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/config"
	"github.com/funvibe/myclips/internal/functions"
	"github.com/funvibe/myclips/internal/typesystem"
)

var symbolResult = []typesystem.Type{typesystem.Symbol}

// numericPredicate declares a comparison taking two or more numbers.
func numericPredicate(name string, handler functions.Handler) *functions.Definition {
	return functions.NewSystemDefinition(name, symbolResult, handler,
		functions.MinArgCount(2),
		functions.ArgType(functions.All, true, typesystem.Number),
	)
}

func greaterThanDefinition() *functions.Definition {
	return numericPredicate(config.GreaterThanFuncName, GreaterThan)
}

func lessThanDefinition() *functions.Definition {
	return numericPredicate(config.LessThanFuncName, LessThan)
}

func greaterThanOrEqualDefinition() *functions.Definition {
	return numericPredicate(config.GreaterThanOrEqualFuncName, GreaterThanOrEqual)
}

func lessThanOrEqualDefinition() *functions.Definition {
	return numericPredicate(config.LessThanOrEqualFuncName, LessThanOrEqual)
}

func numEqualDefinition() *functions.Definition {
	return numericPredicate(config.NumEqualFuncName, NumEqual)
}

func numNotEqualDefinition() *functions.Definition {
	return numericPredicate(config.NumNotEqualFuncName, NumNotEqual)
}

// GreaterThan returns TRUE if every argument is strictly greater than the
// one after it. Integers and floats compare by value, so (> 3.5 3) is TRUE.
func GreaterThan(env functions.Environment, args []ast.Node) (ast.Value, error) {
	return compareConsecutive(env, args, func(c int, ordered bool) bool { return ordered && c > 0 })
}

// LessThan returns TRUE if every argument is strictly less than the one after it.
func LessThan(env functions.Environment, args []ast.Node) (ast.Value, error) {
	return compareConsecutive(env, args, func(c int, ordered bool) bool { return ordered && c < 0 })
}

// GreaterThanOrEqual returns TRUE if the arguments never increase.
func GreaterThanOrEqual(env functions.Environment, args []ast.Node) (ast.Value, error) {
	return compareConsecutive(env, args, func(c int, ordered bool) bool { return ordered && c >= 0 })
}

// LessThanOrEqual returns TRUE if the arguments never decrease.
func LessThanOrEqual(env functions.Environment, args []ast.Node) (ast.Value, error) {
	return compareConsecutive(env, args, func(c int, ordered bool) bool { return ordered && c <= 0 })
}

// NumEqual returns TRUE if every argument equals the first.
func NumEqual(env functions.Environment, args []ast.Node) (ast.Value, error) {
	return compareWithFirst(env, args, func(c int, ordered bool) bool { return ordered && c == 0 })
}

// NumNotEqual returns TRUE if no later argument equals the first.
func NumNotEqual(env functions.Environment, args []ast.Node) (ast.Value, error) {
	return compareWithFirst(env, args, func(c int, ordered bool) bool { return !ordered || c != 0 })
}

// compareConsecutive resolves arguments left to right and stops at the first
// pair for which holds is false. Arguments after that are not evaluated.
// Any comparison involving NaN is unordered.
func compareConsecutive(env functions.Environment, args []ast.Node, holds func(c int, ordered bool) bool) (ast.Value, error) {
	prev, err := resolveNumber(env, args, 0)
	if err != nil {
		return nil, err
	}
	ok := true
	for i := 1; ok && i < len(args); i++ {
		cur, err := resolveNumber(env, args, i)
		if err != nil {
			return nil, err
		}
		ok = holds(compareNumbers(prev, cur))
		prev = cur
	}
	return ast.Bool(ok), nil
}

func compareWithFirst(env functions.Environment, args []ast.Node, holds func(c int, ordered bool) bool) (ast.Value, error) {
	first, err := resolveNumber(env, args, 0)
	if err != nil {
		return nil, err
	}
	ok := true
	for i := 1; ok && i < len(args); i++ {
		cur, err := resolveNumber(env, args, i)
		if err != nil {
			return nil, err
		}
		ok = holds(compareNumbers(first, cur))
	}
	return ast.Bool(ok), nil
}

// resolveNumber reduces args[i] to a number and returns its primitive,
// an int64 or a float64.
func resolveNumber(env functions.Environment, args []ast.Node, i int) (any, error) {
	v, err := env.Simplify(args[i], fmt.Sprintf("argument #%d", i+1), typesystem.Number)
	if err != nil {
		return nil, err
	}
	return ast.Resolve(v), nil
}

// compareNumbers compares two int64/float64 primitives. Integers are only
// converted to float when the other side is a float. ordered is false when
// either side is NaN; c is then meaningless.
func compareNumbers(a, b any) (c int, ordered bool) {
	ai, aInt := a.(int64)
	bi, bInt := b.(int64)
	if aInt && bInt {
		return cmp.Compare(ai, bi), true
	}
	af, bf := toFloat(a), toFloat(b)
	if math.IsNaN(af) || math.IsNaN(bf) {
		return 0, false
	}
	return cmp.Compare(af, bf), true
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		panic(fmt.Sprintf("builtins: %T is not a number", v))
	}
}

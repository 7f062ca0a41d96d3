package evaluator

import "fmt"

// UndefinedFunctionError is returned when a called function is unknown or
// only forward-declared.
type UndefinedFunctionError struct {
	Name    string
	Forward bool
}

func (e *UndefinedFunctionError) Error() string {
	if e.Forward {
		return fmt.Sprintf("function %s is declared but not yet defined", e.Name)
	}
	return fmt.Sprintf("missing function declaration for %s", e.Name)
}

// InvalidCallError reports a call rejected by the function's constraints.
type InvalidCallError struct {
	Function string
	Reason   string
}

func (e *InvalidCallError) Error() string {
	return fmt.Sprintf("function %s %s", e.Function, e.Reason)
}

// UnboundVariableError reports a reference to a variable with no value.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable ?%s is unbound", e.Name)
}

// ReturnTypeError reports a handler that produced a value its definition
// does not declare.
type ReturnTypeError struct {
	Function string
	Got      string
}

func (e *ReturnTypeError) Error() string {
	return fmt.Sprintf("function %s returned undeclared type %s", e.Function, e.Got)
}

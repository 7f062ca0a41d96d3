package restricted

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("definition not found")
	// ErrMultipleDefinition matches every *MultipleDefinitionError through errors.Is.
	ErrMultipleDefinition = errors.New("multiple definition")
	// ErrInvalidName is returned for an empty or blank definition name.
	ErrInvalidName = errors.New("invalid definition name")
)

// NotFoundError indicates that no definition with Name is stored.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// MultipleDefinitionError indicates an attempt to redefine an active definition.
type MultipleDefinitionError struct {
	Kind   string
	Module string
	Name   string
}

func (e *MultipleDefinitionError) Error() string {
	return fmt.Sprintf("Cannot redefine %s %s::%s while it is in use", e.Kind, e.Module, e.Name)
}

func (e *MultipleDefinitionError) Is(target error) bool { return target == ErrMultipleDefinition }

func NewMultipleDefinitionError(kind, module, name string) *MultipleDefinitionError {
	return &MultipleDefinitionError{Kind: kind, Module: module, Name: name}
}

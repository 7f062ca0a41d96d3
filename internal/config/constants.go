package config

// SystemModuleName is the pseudo-module that owns every system function.
const SystemModuleName = "?SYSTEM?"

// DefaultModuleName is the module of a scope created without an explicit name.
const DefaultModuleName = "MAIN"

// DefFunctionKind is the definition kind of every function definition.
const DefFunctionKind = "deffunction"

// EventNewDefinition is published by a function registry after a definition
// has been stored.
const EventNewDefinition = "EVENT_FunctionsManager_NewDefinition"

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName = "myclips.yaml"

// Built-in function names
const (
	GreaterThanFuncName        = ">"
	LessThanFuncName           = "<"
	GreaterThanOrEqualFuncName = ">="
	LessThanOrEqualFuncName    = "<="
	NumEqualFuncName           = "="
	NumNotEqualFuncName        = "<>"
)

package functions

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/funvibe/myclips/internal/config"
	"github.com/funvibe/myclips/internal/events"
	"github.com/funvibe/myclips/internal/restricted"
)

// ErrNotSystemFunction is returned when a definition owned by a user module is
// registered as a system function.
var ErrNotSystemFunction = errors.New("not a system function")

// Scope is the namespace a registry belongs to.
type Scope interface {
	ModuleName() string
}

// Bootstrap supplies the system functions a registry starts with.
type Bootstrap interface {
	Definitions() map[string]*Definition
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug records. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithSubscriber attaches fn to EventNewDefinition at construction.
func WithSubscriber(fn events.Listener[*Definition]) Option {
	return func(r *Registry) { r.initial = append(r.initial, fn) }
}

// Registry resolves function names within one scope. System functions live
// in a flat namespace shared by no one else; user functions are kept in the
// scope's definition store.
type Registry struct {
	scope   Scope
	system  map[string]*Definition
	store   *restricted.Manager[*Definition]
	events  *events.Channel[*Definition]
	logger  *slog.Logger
	initial []events.Listener[*Definition]
}

// NewRegistry returns the registry of scope, seeded with the system functions
// of bootstrap. It panics if bootstrap supplies a forward definition, one
// owned by a user module, or one keyed under a name other than its own.
func NewRegistry(scope Scope, bootstrap Bootstrap, opts ...Option) *Registry {
	r := &Registry{
		scope:  scope,
		system: make(map[string]*Definition),
		store:  restricted.NewManager[*Definition](config.DefFunctionKind),
		events: events.NewChannel[*Definition](config.EventNewDefinition),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	if bootstrap != nil {
		for name, def := range bootstrap.Definitions() {
			if def.Name() != name {
				panic(fmt.Sprintf("system function %q registered as %q", def.Name(), name))
			}
			if def.IsForward() {
				panic(fmt.Sprintf("system function %q is forward-declared", name))
			}
			if def.ModuleName() != config.SystemModuleName {
				panic(fmt.Sprintf("system function %q is owned by %s", name, def.ModuleName()))
			}
			r.system[name] = def
		}
	}

	for _, fn := range r.initial {
		// The event is in the channel's set, so Subscribe cannot fail.
		_, _ = r.events.Subscribe(config.EventNewDefinition, fn)
	}
	r.initial = nil

	return r
}

// HasSystemFunction reports whether name is a system function.
func (r *Registry) HasSystemFunction(name string) bool {
	_, ok := r.system[name]
	return ok
}

// SystemFunctions returns the names of all system functions, sorted.
func (r *Registry) SystemFunctions() []string {
	names := make([]string, 0, len(r.system))
	for name := range r.system {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UserFunctions returns the names of the functions stored in the scope, sorted.
func (r *Registry) UserFunctions() []string {
	return r.store.Names()
}

// GetSystemFunctionDefinition returns the system function name.
func (r *Registry) GetSystemFunctionDefinition(name string) (*Definition, error) {
	def, ok := r.system[name]
	if !ok {
		return nil, restricted.NewNotFoundError(config.DefFunctionKind, config.SystemModuleName+"::"+name)
	}
	return def, nil
}

// Has reports whether name can be called: it is defined in either namespace
// and the definition found is not a forward declaration.
func (r *Registry) Has(name string) bool {
	def, err := r.GetDefinition(name)
	if err != nil {
		return false
	}
	return !def.IsForward()
}

// GetDefinition returns the definition of name. System functions shadow user
// functions of the same name. Errors from the scope store are returned as is.
func (r *Registry) GetDefinition(name string) (*Definition, error) {
	if def, ok := r.system[name]; ok {
		return def, nil
	}
	return r.store.GetDefinition(name)
}

// AddDefinition stores def in the scope and publishes EventNewDefinition.
// A forward definition owned by another module is locked first: once
// imported it can no longer be redefined here.
func (r *Registry) AddDefinition(def *Definition) error {
	if def.ModuleName() != r.scope.ModuleName() && def.IsForward() {
		def.Lock()
		r.logger.Debug("DefFunction imported, can't be redefined",
			"module", def.ModuleName(), "name", def.Name(), "scope", r.scope.ModuleName())
	}

	if err := r.store.AddDefinition(def); err != nil {
		return err
	}

	return r.events.Publish(config.EventNewDefinition, def)
}

// RegisterSystemFunction adds def to the system namespace. The namespace is
// flat and append-only: an existing name is never replaced. def must be owned
// by the system pseudo-module; it is locked, since a system function can
// never be forward.
func (r *Registry) RegisterSystemFunction(def *Definition) error {
	if def.ModuleName() != config.SystemModuleName {
		return fmt.Errorf("%w: %s", ErrNotSystemFunction, def.QualifiedName())
	}
	if r.HasSystemFunction(def.Name()) {
		return restricted.NewMultipleDefinitionError(def.DefinitionKind(), config.SystemModuleName, def.Name())
	}
	def.Lock()
	r.system[def.Name()] = def
	r.logger.Debug("System function registered", "name", def.Name())
	return nil
}

// Subscribe attaches fn to EventNewDefinition and returns a function that
// detaches it.
func (r *Registry) Subscribe(fn events.Listener[*Definition]) func() {
	unsubscribe, _ := r.events.Subscribe(config.EventNewDefinition, fn)
	return unsubscribe
}

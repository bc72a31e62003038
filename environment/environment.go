/*
File    : go-mix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the chained variable frames GoMix uses
// for lexical scoping. Frames are never snapshotted or copied: two
// closures declared in the same block must observe each other's later
// assignments, and a copy would stop sharing state the moment it was
// taken. Every frame is handed out as a shared pointer instead —
// closures that capture the same block share the same *Environment, so
// an assignment through one is visible through the other.
package environment

import (
	"fmt"

	"github.com/akashmaji946/go-mix/objects"
)

// Environment is one lexical scope frame: a set of name-to-value
// bindings plus a pointer to the enclosing frame (nil at the global
// scope). Frames are always referenced by pointer and never copied.
type Environment struct {
	values    map[string]objects.GoMixObject
	enclosing *Environment
}

// NewEnvironment creates a top-level (global) environment with no
// enclosing frame.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]objects.GoMixObject)}
}

// NewEnclosed creates a new frame parented on enclosing — the frame
// pushed for a block, function call, or loop body.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]objects.GoMixObject), enclosing: enclosing}
}

// Define binds name to value in this frame. At the global scope
// redefining an existing name is allowed (the REPL relies on this to let
// a user redeclare a variable across lines); inside any other scope the
// resolver rejects a duplicate declaration before Define is ever called,
// so Define itself enforces nothing.
func (e *Environment) Define(name string, value objects.GoMixObject) {
	e.values[name] = value
}

// Get looks up name by walking outward through enclosing frames. This is
// the fallback path used only for globals and for any reference the
// resolver could not bind to a depth (there should be none once the
// resolver has run, but Get stays correct on its own for tests that
// exercise the environment directly).
func (e *Environment) Get(name string) (objects.GoMixObject, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

// Assign mutates the nearest frame (walking outward) that already binds
// name. It does not create a new binding — assigning to an undeclared
// variable is an error.
func (e *Environment) Assign(name string, value objects.GoMixObject) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("undefined variable '%s'", name)
}

// ancestor walks exactly distance frames outward. The resolver guarantees
// distance is always within range for any Variable/Assign node it has
// resolved, so this never needs to fail gracefully — a bug here would be
// a resolver bug, not a user error.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the frame `distance` scopes outward,
// bypassing the walk-and-test Get does. The resolver computes distance
// once per Variable node so every subsequent lookup is O(1) instead of
// O(scope depth).
func (e *Environment) GetAt(distance int, name string) objects.GoMixObject {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value directly into the frame `distance` scopes
// outward, the Assign-node counterpart to GetAt.
func (e *Environment) AssignAt(distance int, name string, value objects.GoMixObject) {
	e.ancestor(distance).values[name] = value
}

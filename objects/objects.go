/*
File    : go-mix/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the core data types and interfaces for the GoMix
// programming language's runtime values. It provides implementations for
// the primitive types (numbers, strings, booleans, nil) and the Callable
// interface shared by user-defined and native functions. All types
// implement the GoMixObject interface, which allows for type checking,
// string representation, and object inspection.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// GoMixType represents the type of a GoMix object as a string constant.
// These constants are used to identify the type of objects in the
// language, enabling type checking and polymorphic behavior across
// different object types.
type GoMixType string

const (
	// NumberType represents 64-bit floating-point values — the language's
	// sole numeric type.
	NumberType GoMixType = "number"
	// StringType represents string values
	StringType GoMixType = "string"
	// BooleanType represents boolean (true/false) values
	BooleanType GoMixType = "bool"
	// NilType represents the absence of a value
	NilType GoMixType = "nil"
	// FunctionType represents callable objects, user-defined or native
	FunctionType GoMixType = "func"
)

// GoMixObject is the core interface that all GoMix runtime values must
// implement. It provides methods for type identification, string
// representation for display, and object inspection for debugging.
type GoMixObject interface {
	// GetType returns the GoMixType of the object, used for type checking
	GetType() GoMixType
	// ToString returns a human-readable string representation of the
	// object's value, the form `print` writes to the output stream
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, useful for debugging and REPL echoing
	ToObject() string
}

// ExtractValue extracts the raw Go value from a GoMixObject. This utility
// function is used when interfacing with Go's standard library or when
// performing operations that require native Go types.
func ExtractValue(obj GoMixObject) (interface{}, error) {
	switch obj.GetType() {
	case NumberType:
		return obj.(*Number).Value, nil
	case StringType:
		return obj.(*String).Value, nil
	case BooleanType:
		return obj.(*Boolean).Value, nil
	case NilType:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", obj.GetType())
	}
}

// Number represents the language's single numeric type: a 64-bit
// floating-point value. GoMix has no separate integer type — integer-
// looking literals are just numbers whose fractional part is zero.
type Number struct {
	Value float64
}

// GetType returns the type of the Number object
func (n *Number) GetType() GoMixType {
	return NumberType
}

// ToString prints integral numbers without a trailing ".0" and
// non-integral numbers with Go's default float formatting, matching the
// dual "123" / "123.456" forms a REPL user expects.
func (n *Number) ToString() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// ToObject returns a detailed representation including type info
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// String represents a string value in GoMix.
type String struct {
	Value string
}

// GetType returns the type of the String object
func (s *String) GetType() GoMixType {
	return StringType
}

// ToString returns the string value itself
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Boolean represents a boolean value in GoMix.
type Boolean struct {
	Value bool
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() GoMixType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return strconv.FormatBool(b.Value)
}

// ToObject returns a detailed representation including type info
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Nil represents the absence of a value in GoMix. Only Nil and a false
// Boolean are falsey; every other value, including the number zero and
// the empty string, is truthy.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() GoMixType {
	return NilType
}

// ToString returns the string "nil"
func (n *Nil) ToString() string {
	return "nil"
}

// ToObject returns "<nil()>"
func (n *Nil) ToObject() string {
	return "<nil()>"
}

// NIL is the single shared Nil value; callers never need to allocate
// their own.
var NIL = &Nil{}

// TRUE and FALSE are the shared Boolean values, mirroring NIL.
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// Callable is implemented by anything GoMix can invoke with `(...)`:
// user-defined functions (function.UserFunction) and native functions
// (function.NativeFunction). Arity and Call are deliberately free of any
// interpreter-internal type so that objects never imports interp,
// avoiding an import cycle between the value model and the evaluator.
type Callable interface {
	GoMixObject
	// Arity returns the number of parameters this callable expects.
	Arity() int
	// Call invokes the callable with already-evaluated arguments. The
	// caller type is `interface{}` (the concrete *interp.Interpreter) to
	// avoid the objects → interp import cycle; implementations type-
	// assert it back.
	Call(interpreter interface{}, arguments []GoMixObject) (GoMixObject, error)
}

// IsTruthy implements GoMix's truthiness rule: nil and the boolean false
// are falsey, everything else is truthy.
func IsTruthy(obj GoMixObject) bool {
	switch v := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// IsEqual implements GoMix's value-equality rule: values of different
// GoMixType are never equal (no implicit coercion), nil equals only nil,
// and numeric equality follows IEEE-754 (so NaN != NaN).
func IsEqual(a, b GoMixObject) bool {
	if a.GetType() != b.GetType() {
		return false
	}
	switch av := a.(type) {
	case *Nil:
		return true
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Number:
		return av.Value == b.(*Number).Value
	case *String:
		return av.Value == b.(*String).Value
	default:
		return a == b
	}
}

// Stringify renders each GoMixObject with ToString, the form `print`
// writes, and joins the results with single spaces.
func Stringify(objs ...GoMixObject) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = o.ToString()
	}
	return strings.Join(parts, " ")
}

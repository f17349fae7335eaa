package handler

import (
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/request"
)

// Builtin type names for scalar parameters.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeBool   = "bool"
	TypeFloat  = "float64"
)

// Param describes one declared parameter of an action.
type Param struct {
	// Name is matched against route parameter names.
	Name string
	// Type is the declared type identifier. Empty means no declared type.
	Type string
	// Builtin marks scalar types; other types are looked up as services.
	Builtin bool
	// Nullable marks a parameter that accepts nil.
	Nullable bool
	// Default is bound when nothing else matches and HasDefault is set.
	Default    any
	HasDefault bool
}

// Optional returns a copy of p that accepts nil.
func (p Param) Optional() Param {
	p.Nullable = true
	return p
}

// WithDefault returns a copy of p with a declared default value.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// String declares a string parameter.
func String(name string) Param {
	return Param{Name: name, Type: TypeString, Builtin: true}
}

// Int declares an int parameter.
func Int(name string) Param {
	return Param{Name: name, Type: TypeInt, Builtin: true}
}

// Bool declares a bool parameter.
func Bool(name string) Param {
	return Param{Name: name, Type: TypeBool, Builtin: true}
}

// Float declares a float64 parameter.
func Float(name string) Param {
	return Param{Name: name, Type: TypeFloat, Builtin: true}
}

// Any declares a parameter without a type.
func Any(name string) Param {
	return Param{Name: name}
}

// Service declares a parameter bound to the service registered under the
// identifier of T.
func Service[T any](name string) Param {
	return Param{Name: name, Type: container.KeyOf[T]()}
}

// ServiceNamed declares a parameter bound to the service registered under id.
func ServiceNamed(name, id string) Param {
	return Param{Name: name, Type: id}
}

// Request declares a parameter that receives the live request.
func Request(name string) Param {
	return Param{Name: name, Type: request.TypeName}
}

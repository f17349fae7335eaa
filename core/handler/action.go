package handler

import (
	"fmt"

	"github.com/dmitrymomot/dispatch/core/response"
)

// Args holds the arguments of an action in declaration order.
type Args []any

// Arg returns argument i converted to T. A nil or mismatched argument
// yields the zero value of T.
func Arg[T any](args Args, i int) T {
	var zero T
	if i < 0 || i >= len(args) {
		return zero
	}
	v, ok := args[i].(T)
	if !ok {
		return zero
	}
	return v
}

// Invokable is implemented by values that can serve as an action: they
// declare their parameters and accept them positionally.
type Invokable interface {
	Params() []Param
	Invoke(args Args) (response.Response, error)
}

// Func is a closure action with an explicit parameter list.
type Func struct {
	Parameters []Param
	Fn         func(args Args) (response.Response, error)
}

// NewFunc creates a closure action.
func NewFunc(fn func(args Args) (response.Response, error), params ...Param) *Func {
	return &Func{Parameters: params, Fn: fn}
}

// Params returns the declared parameters.
func (f *Func) Params() []Param {
	return f.Parameters
}

// Invoke calls the closure.
func (f *Func) Invoke(args Args) (response.Response, error) {
	return f.Fn(args)
}

// Controller exposes named actions, e.g. the methods of a resource.
type Controller interface {
	Action(name string) (Invokable, bool)
}

// Actions is a map based Controller.
type Actions map[string]Invokable

// Action returns the action registered under name.
func (a Actions) Action(name string) (Invokable, bool) {
	inv, ok := a[name]
	return inv, ok
}

// Class refers to a service whose instance is Invokable.
type Class string

// MethodRef refers to a named action of a Controller service.
type MethodRef struct {
	Class  string
	Method string
}

// Method creates a reference to the action name of the controller
// registered under class.
func Method(class, name string) MethodRef {
	return MethodRef{Class: class, Method: name}
}

// String returns "class::method".
func (m MethodRef) String() string {
	return fmt.Sprintf("%s::%s", m.Class, m.Method)
}

package resolver

import (
	"fmt"
	"maps"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

// Invoker is the terminal handler of a chain: it calls the route action
// with its resolved arguments, substituting the live request into the
// parameters that asked for it.
type Invoker struct {
	action            handler.Invokable
	requestParameters []string
	params            map[string]any
}

// NewInvoker creates an invoker. The params map is copied.
func NewInvoker(action handler.Invokable, requestParameters []string, params map[string]any) *Invoker {
	return &Invoker{
		action:            action,
		requestParameters: append([]string(nil), requestParameters...),
		params:            maps.Clone(params),
	}
}

// Action returns the wrapped action.
func (h *Invoker) Action() handler.Invokable {
	return h.action
}

// RequestParameters returns the names that receive the live request.
func (h *Invoker) RequestParameters() []string {
	return append([]string(nil), h.requestParameters...)
}

// Params returns a copy of the resolved arguments by name.
func (h *Invoker) Params() map[string]any {
	return maps.Clone(h.params)
}

// Handle invokes the action. Arguments are looked up by parameter name and
// passed in the order the action declares them. Errors returned by the
// action are passed through unchanged.
func (h *Invoker) Handle(req *request.Request) (response.Response, error) {
	params := make(map[string]any, len(h.params)+len(h.requestParameters))
	maps.Copy(params, h.params)
	for _, name := range h.requestParameters {
		params[name] = req
	}

	declared := h.action.Params()
	args := make(handler.Args, len(declared))
	for i, p := range declared {
		v, ok := params[p.Name]
		switch {
		case ok:
			args[i] = v
		case p.HasDefault:
			args[i] = p.Default
		default:
			return nil, fmt.Errorf("%w: missing argument %q", ErrArgumentMismatch, p.Name)
		}
	}

	return h.action.Invoke(args)
}

// InvokerFactory creates invokers.
type InvokerFactory interface {
	Create(action handler.Invokable, requestParameters []string, params map[string]any) handler.Handler
}

// InvokerFactoryFunc adapts a function to the InvokerFactory interface.
type InvokerFactoryFunc func(action handler.Invokable, requestParameters []string, params map[string]any) handler.Handler

// Create calls f.
func (f InvokerFactoryFunc) Create(action handler.Invokable, requestParameters []string, params map[string]any) handler.Handler {
	return f(action, requestParameters, params)
}

type invokerFactory struct{}

// NewInvokerFactory returns the default factory producing *Invoker.
func NewInvokerFactory() InvokerFactory {
	return invokerFactory{}
}

func (invokerFactory) Create(action handler.Invokable, requestParameters []string, params map[string]any) handler.Handler {
	return NewInvoker(action, requestParameters, params)
}

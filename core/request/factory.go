package request

import (
	"errors"
	"net/http"
)

// ErrNilHTTPRequest is returned when a request is built from a nil *http.Request.
var ErrNilHTTPRequest = errors.New("nil http request")

// Factory assembles a Request from the data of an incoming HTTP request.
type Factory interface {
	Create(r *http.Request) (*Request, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(r *http.Request) (*Request, error)

// Create calls f(r).
func (f FactoryFunc) Create(r *http.Request) (*Request, error) {
	return f(r)
}

type factory struct{}

// NewFactory returns the default request factory.
func NewFactory() Factory {
	return factory{}
}

func (factory) Create(r *http.Request) (*Request, error) {
	if r == nil {
		return nil, ErrNilHTTPRequest
	}
	return New(r), nil
}

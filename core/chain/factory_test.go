package chain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/chain"
	"github.com/dmitrymomot/dispatch/core/container"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/request"
	"github.com/dmitrymomot/dispatch/core/response"
)

type MockLocator struct {
	mock.Mock
}

func (m *MockLocator) Has(id string) bool {
	return m.Called(id).Bool(0)
}

func (m *MockLocator) Get(id string) (any, error) {
	args := m.Called(id)
	return args.Get(0), args.Error(1)
}

func tag(name string, order *[]string) handler.Middleware {
	return handler.MiddlewareFunc(func(r *request.Request, next handler.Handler) (response.Response, error) {
		*order = append(*order, name)
		return next.Handle(r)
	})
}

func TestFactoryResolvesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	locator := &MockLocator{}
	locator.On("Get", "auth").Return(tag("auth", &order), nil).Once()
	locator.On("Get", "log").Return(tag("log", &order), nil).Once()

	final := handler.HandlerFunc(func(*request.Request) (response.Response, error) {
		order = append(order, "final")
		return response.NoContent(), nil
	})

	h, err := chain.NewFactory(locator).Create([]string{"log", "auth"}, final)
	require.NoError(t, err)

	_, err = h.Handle(newRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"log", "auth", "final"}, order)
	locator.AssertExpectations(t)
}

func TestFactorySkipsValuesThatAreNotMiddleware(t *testing.T) {
	t.Parallel()

	var order []string
	locator := &MockLocator{}
	locator.On("Get", "config").Return("not a middleware", nil).Once()
	locator.On("Get", "log").Return(tag("log", &order), nil).Once()

	mws, err := chain.NewFactory(locator).Build([]string{"config", "log"})
	require.NoError(t, err)
	assert.Len(t, mws, 1)
}

func TestFactoryPropagatesLocatorErrors(t *testing.T) {
	t.Parallel()

	locator := &MockLocator{}
	locator.On("Get", "missing").Return(nil, container.ErrNotFound).Once()

	h, err := chain.NewFactory(locator).Create([]string{"missing"}, &MockHandler{})
	require.Error(t, err)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, container.ErrNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestFactoryWithoutMiddlewareReturnsFinalBehaviour(t *testing.T) {
	t.Parallel()

	req := newRequest()
	final := &MockHandler{}
	final.On("Handle", req).Return(response.String("final"), nil).Once()

	h, err := chain.NewFactory(&MockLocator{}).Create(nil, final)
	require.NoError(t, err)

	result, err := h.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "final", renderBody(t, result))
	final.AssertExpectations(t)
}

func TestFactoryWithRealContainer(t *testing.T) {
	t.Parallel()

	var order []string
	c := container.New()
	require.NoError(t, c.ProvideValue("a", tag("a", &order)))
	require.NoError(t, c.ProvideValue("b", tag("b", &order)))

	final := handler.HandlerFunc(func(*request.Request) (response.Response, error) {
		return nil, errors.New("final failed")
	})

	h, err := chain.NewFactory(c).Create([]string{"a", "b"}, final)
	require.NoError(t, err)

	_, err = h.Handle(newRequest())
	assert.EqualError(t, err, "final failed")
	assert.Equal(t, []string{"a", "b"}, order)
}

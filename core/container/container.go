package container

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Locator looks up services by identifier.
// Implementations must be safe for concurrent reads.
type Locator interface {
	// Has reports whether a service is registered under id.
	Has(id string) bool
	// Get returns the service registered under id.
	// It fails with ErrNotFound or ErrResolution.
	Get(id string) (any, error)
}

// Factory builds a service. It may resolve its own dependencies from the
// locator it receives, but must not request the service it builds.
type Factory func(l Locator) (any, error)

type entry struct {
	mu      sync.Mutex
	factory Factory
	built   bool
	value   any
}

// Container is a concurrency-safe service registry.
// Services registered with a factory are built lazily on first Get and
// cached for the lifetime of the container.
type Container struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty container.
func New() *Container {
	return &Container{entries: make(map[string]*entry)}
}

// Provide registers a lazily built service under id.
func (c *Container) Provide(id string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, id)
	}
	return c.add(id, &entry{factory: factory})
}

// ProvideValue registers an already built service under id.
func (c *Container) ProvideValue(id string, value any) error {
	return c.add(id, &entry{built: true, value: value})
}

func (c *Container) add(id string, e *entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, id)
	}
	c.entries[id] = e
	return nil
}

// Has reports whether a service is registered under id.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[id]
	return ok
}

// Get returns the service registered under id, building it if needed.
func (c *Container) Get(id string) (any, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.built {
		return e.value, nil
	}

	v, err := e.factory(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResolution, id, err)
	}
	e.value = v
	e.built = true
	return v, nil
}

// IDs returns the registered identifiers in sorted order.
func (c *Container) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// KeyOf returns the identifier of type T, e.g. "*app.Repository".
// Services registered under KeyOf[T] satisfy handler parameters declared
// with the same type.
func KeyOf[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Register registers a lazily built service under the identifier of T.
func Register[T any](c *Container, fn func(l Locator) (T, error)) error {
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, KeyOf[T]())
	}
	return c.Provide(KeyOf[T](), func(l Locator) (any, error) {
		return fn(l)
	})
}

// RegisterValue registers v under the identifier of T.
func RegisterValue[T any](c *Container, v T) error {
	return c.ProvideValue(KeyOf[T](), v)
}

// Resolve fetches a service by the identifier of T and asserts its type.
func Resolve[T any](l Locator) (T, error) {
	return ResolveNamed[T](l, KeyOf[T]())
}

// ResolveNamed fetches the service registered under id and asserts it is a T.
func ResolveNamed[T any](l Locator, id string) (T, error) {
	var zero T

	v, err := l.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s: unexpected type %T", ErrResolution, id, v)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure.
// Intended for composition roots.
func MustResolve[T any](l Locator) T {
	v, err := Resolve[T](l)
	if err != nil {
		panic(err)
	}
	return v
}

package adapter

import (
	"fmt"

	"github.com/maximvlah/ntf/internal/domain"
	"github.com/maximvlah/ntf/internal/port"
)

// Factory is a function that creates a DocumentAdapter.
type Factory func() port.DocumentAdapter

// registry of adapter factories, populated by init() in each adapter package
// or explicitly via Register.
var adapters = map[string]Factory{}

// Register registers an adapter factory by name.
func Register(name string, factory Factory) {
	adapters[name] = factory
}

// New creates a DocumentAdapter by name using the registered factory.
func New(name string) (port.DocumentAdapter, error) {
	factory, ok := adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedAdapter, name)
	}
	return factory(), nil
}

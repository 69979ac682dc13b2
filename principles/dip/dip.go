// Package dip demonstrates the Dependency Inversion Principle.
//
// Customer is the high-level module. It depends on the FoodProvider
// abstraction and is handed one at construction time; it never names a
// vendor type. Vendors are swapped in the composition root (Run, or the
// container wiring in WireCustomer) without touching Customer.
package dip

import (
	"fmt"
	"io"

	"github.com/altRush/solid-design-principles/di"
)

// KeyFoodProvider records the injected provider in a Customer's dependency bag.
const KeyFoodProvider di.DependencyKey = "foodProvider"

// FoodProvider is the abstraction Customer depends on.
type FoodProvider interface {
	ProvideFood() string
}

type IceCreamTruck struct{}

func (IceCreamTruck) ProvideFood() string { return "Some sick ice cream!" }

type TacoStand struct{}

func (TacoStand) ProvideFood() string { return "Some tasty tacos!" }

// Customer eats whatever its provider serves.
type Customer struct {
	provider FoodProvider
}

func NewCustomer(p FoodProvider) *Customer {
	return &Customer{provider: p}
}

// Consume writes the provider's message on its own line.
func (c *Customer) Consume(w io.Writer) {
	fmt.Fprintln(w, c.provider.ProvideFood())
}

// WireCustomer builds a Customer through the di container instead of
// NewCustomer. The provider is recorded under KeyFoodProvider.
//
// A nil provider fails with di.NilDependencyServiceError.
func WireCustomer(p FoodProvider) (*di.Service[Customer], error) {
	var provider *di.Service[FoodProvider]
	if p != nil {
		provider = di.Init(func() *FoodProvider { return &p })
	}

	customer := di.Init(func() *Customer { return &Customer{} })
	return customer.With(di.Injecting(KeyFoodProvider, provider, func(c *Customer, fp *FoodProvider) {
		c.provider = *fp
	}))
}

func must[T any](v *T, err error) *T {
	if err != nil {
		panic(err)
	}
	return v
}

// Run feeds one customer from an ice cream truck (constructor injection)
// and another from a taco stand (container wiring).
func Run(w io.Writer) {
	NewCustomer(IceCreamTruck{}).Consume(w)

	wired := must(WireCustomer(TacoStand{}))
	wired.Value().Consume(w)
}

// Package di provides explicit, reflection-free dependency wiring.
//
// Two pieces live here:
//
//   - Service[T] + Injector[T]: a constructed value plus a bag of the
//     dependencies recorded while wiring it. Injectors report wiring mistakes
//     (nil targets, nil dependencies, duplicate keys) as typed errors.
//
//   - Registry / MapRegistry: an ordered name -> value store that composition
//     roots use to look things up by name.
//
// Nothing here resolves a graph automatically. Wiring stays in the caller,
// which is the point of the dependency inversion demo that uses it:
//
//	provider := di.Init(func() *dip.FoodProvider { ... })
//	customer := di.Init(func() *dip.Customer { return &dip.Customer{} })
//	_, err := customer.With(di.Injecting(key, provider, bind))
package di

// Package solid is a set of small, runnable demonstrations of the SOLID
// object-oriented design principles, written with Go interfaces and
// composition.
//
// Each principle lives in its own package and has no dependency on the
// others:
//
//   - principles/srp: Single Responsibility (cookies)
//   - principles/ocp: Open/Closed (robots)
//   - principles/lsp: Liskov Substitution (animals)
//   - principles/isp: Interface Segregation (performers)
//   - principles/dip: Dependency Inversion (food vendors)
//
// Supporting packages:
//   - di: explicit dependency wiring used by the DIP demo and the catalog
//   - catalog: registers the demos and runs them by name
//   - cmd/solid: command-line entry point (run, list, version)
package solid

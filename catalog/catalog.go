// Package catalog registers the five principle demos and runs them by name.
package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/altRush/solid-design-principles/di"
	"github.com/altRush/solid-design-principles/internal/log"
	"github.com/altRush/solid-design-principles/principles/dip"
	"github.com/altRush/solid-design-principles/principles/isp"
	"github.com/altRush/solid-design-principles/principles/lsp"
	"github.com/altRush/solid-design-principles/principles/ocp"
	"github.com/altRush/solid-design-principles/principles/srp"
)

// Demo is one runnable principle demonstration.
type Demo struct {
	Name      string
	Principle string
	Run       func(w io.Writer)
}

// UnknownDemoError is returned when a name matches no registered demo.
type UnknownDemoError struct{ Name string }

func (e UnknownDemoError) Error() string {
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// Catalog is an ordered set of demos keyed by lower-case name.
type Catalog struct {
	reg *di.MapRegistry
}

// New registers demos in the given order. A later demo with the same name
// replaces an earlier one.
func New(demos ...Demo) *Catalog {
	reg := di.NewMapRegistry()
	for _, d := range demos {
		reg.Provide(normalize(d.Name), d)
	}
	return &Catalog{reg: reg}
}

// Default returns the five SOLID demos in acronym order.
func Default() *Catalog {
	return New(
		Demo{Name: "srp", Principle: "Single Responsibility Principle", Run: srp.Run},
		Demo{Name: "ocp", Principle: "Open/Closed Principle", Run: ocp.Run},
		Demo{Name: "lsp", Principle: "Liskov Substitution Principle", Run: lsp.Run},
		Demo{Name: "isp", Principle: "Interface Segregation Principle", Run: isp.Run},
		Demo{Name: "dip", Principle: "Dependency Inversion Principle", Run: dip.Run},
	)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Names returns demo names in catalog order.
func (c *Catalog) Names() []string {
	return c.reg.Keys()
}

// Lookup finds a demo by name, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(name string) (Demo, error) {
	d, ok, err := di.ResolveAs[Demo](c.reg, normalize(name))
	if err != nil {
		return Demo{}, fmt.Errorf("catalog: lookup %q: %w", name, err)
	}
	if !ok {
		return Demo{}, UnknownDemoError{Name: name}
	}
	return d, nil
}

// Select resolves names to demos in the order given. No names selects every
// demo in catalog order.
func (c *Catalog) Select(names ...string) ([]Demo, error) {
	if len(names) == 0 {
		names = c.Names()
	}
	demos := make([]Demo, 0, len(names))
	for _, n := range names {
		d, err := c.Lookup(n)
		if err != nil {
			return nil, err
		}
		demos = append(demos, d)
	}
	return demos, nil
}

// Run prints a banner and the narration of each selected demo, one after
// another, separated by a blank line. Nothing is printed if any name is
// unknown.
func (c *Catalog) Run(w io.Writer, names ...string) error {
	demos, err := c.Select(names...)
	if err != nil {
		return err
	}
	for i, d := range demos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		log.Section(w, d.Principle)
		d.Run(w)
	}
	return nil
}

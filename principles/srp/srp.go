// Package srp demonstrates the Single Responsibility Principle.
//
// A Cookie only holds data. A MilkDunker only acts on a cookie it is handed.
// Changing how cookies are described never touches how they are dunked, and
// the other way round.
package srp

import (
	"fmt"
	"io"
)

// Cookie holds a flavor and nothing else.
type Cookie struct {
	Flavor string
}

// MilkDunker acts on a cookie.
type MilkDunker struct {
	cookie Cookie
}

func NewMilkDunker(c Cookie) MilkDunker {
	return MilkDunker{cookie: c}
}

// Dunk writes one line naming the cookie's flavor.
func (d MilkDunker) Dunk(w io.Writer) {
	fmt.Fprintf(w, "Dipping the %s cookie into the milk and savoring that sweet taste!\n", d.cookie.Flavor)
}

// Run bakes a chocolate chip cookie and dunks it.
func Run(w io.Writer) {
	cookie := Cookie{Flavor: "Chocolate Chip"}
	NewMilkDunker(cookie).Dunk(w)
}

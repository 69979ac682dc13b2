// Package lsp demonstrates the Liskov Substitution Principle.
//
// A Cat can stand in anywhere an Animal is expected. Describe never asks
// which one it got.
package lsp

import (
	"fmt"
	"io"
)

// Creature is what Describe needs from an animal.
type Creature interface {
	Name() string
	Sound() string
}

// Animal is the base type. Its name is only reachable through Name.
type Animal struct {
	name string
}

func NewAnimal(name string) Animal {
	return Animal{name: name}
}

func (a Animal) Name() string { return a.name }

// Sound is the default every animal starts with.
func (a Animal) Sound() string { return "Animal sound!" }

// Cat is an Animal that overrides only Sound.
type Cat struct {
	Animal
}

func NewCat(name string) Cat {
	return Cat{Animal: NewAnimal(name)}
}

func (c Cat) Sound() string { return "Meow!" }

// Describe prints a creature's name and sound.
func Describe(w io.Writer, c Creature) {
	fmt.Fprintf(w, "Name: %s\n", c.Name())
	fmt.Fprintf(w, "Sound: %s\n", c.Sound())
}

// Run describes a plain animal and then a cat through the same function.
func Run(w io.Writer) {
	for _, c := range []Creature{NewAnimal("Generic Animal"), NewCat("Whiskers")} {
		Describe(w, c)
	}
}

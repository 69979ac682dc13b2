// Package isp demonstrates the Interface Segregation Principle.
//
// Singing, dancing and acting are separate capabilities. A crooner is never
// made to pretend it can dance, and Serenade never asks for more than a
// Singer.
package isp

import (
	"fmt"
	"io"
)

type Singer interface {
	Sing(w io.Writer)
}

type Dancer interface {
	Dance(w io.Writer)
}

type Actor interface {
	Act(w io.Writer)
}

// Crooner only sings.
type Crooner struct{}

func (Crooner) Sing(w io.Writer) {
	fmt.Fprintln(w, "The crooner sings a smooth ballad.")
}

// TripleThreat sings, dances and acts.
type TripleThreat struct{}

func (TripleThreat) Sing(w io.Writer) {
	fmt.Fprintln(w, "The triple threat hits every high note.")
}

func (TripleThreat) Dance(w io.Writer) {
	fmt.Fprintln(w, "The triple threat nails the choreography.")
}

func (TripleThreat) Act(w io.Writer) {
	fmt.Fprintln(w, "The triple threat delivers a moving monologue.")
}

func Serenade(w io.Writer, s Singer)    { s.Sing(w) }
func Choreograph(w io.Writer, d Dancer) { d.Dance(w) }
func Rehearse(w io.Writer, a Actor)     { a.Act(w) }

// Run books the crooner for a serenade and the triple threat for everything.
func Run(w io.Writer) {
	Serenade(w, Crooner{})

	star := TripleThreat{}
	Serenade(w, star)
	Choreograph(w, star)
	Rehearse(w, star)
}

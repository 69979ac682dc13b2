// Package ocp demonstrates the Open/Closed Principle.
//
// PlayAll is closed for modification: it only knows the Player capability.
// The set of robots is open for extension: a new robot type only needs a
// Play method to join the show.
package ocp

import (
	"fmt"
	"io"
)

// Player is anything that can put on a show.
type Player interface {
	Play(w io.Writer)
}

// DancingRobot warms up before it dances.
type DancingRobot struct{}

func (r DancingRobot) Play(w io.Writer) {
	r.warmUp(w)
	fmt.Fprintln(w, "Dancing robot busts out the robot dance!")
}

func (DancingRobot) warmUp(w io.Writer) {
	fmt.Fprintln(w, "Dancing robot is warming up its servos...")
}

// SingingRobot sings first and recharges afterwards.
type SingingRobot struct{}

func (r SingingRobot) Play(w io.Writer) {
	fmt.Fprintln(w, "Singing robot belts out a catchy tune!")
	r.recharge(w)
}

func (SingingRobot) recharge(w io.Writer) {
	fmt.Fprintln(w, "Singing robot is recharging its batteries...")
}

// PlayAll lets every player perform, in order.
func PlayAll(w io.Writer, players []Player) {
	for _, p := range players {
		p.Play(w)
	}
}

// Run puts on a show with one robot of each kind.
func Run(w io.Writer) {
	PlayAll(w, []Player{DancingRobot{}, SingingRobot{}})
}

package lib

import (
	"fmt"
	"iter"
)

// Coord is a position on a hex map where every other row is shifted by
// half a hex. Moving north or south changes Y by 2, diagonal moves change
// both X and Y by 1.
type Coord struct {
	X, Y int
}

func (c Coord) Step(d Direction) Coord {
	switch d {
	case North:
		return Coord{c.X, c.Y + 2}
	case NorthWest:
		return Coord{c.X - 1, c.Y + 1}
	case NorthEast:
		return Coord{c.X + 1, c.Y + 1}
	case South:
		return Coord{c.X, c.Y - 2}
	case SouthWest:
		return Coord{c.X - 1, c.Y - 1}
	case SouthEast:
		return Coord{c.X + 1, c.Y - 1}
	}
	panic(fmt.Errorf("invalid direction %d", int(d)))
}

// Steps returns position reached after following all the directions.
func (c Coord) Steps(directions []Direction) Coord {
	for _, d := range directions {
		c = c.Step(d)
	}
	return c
}

// Path yields positions after each consecutive step, excluding c itself.
// Every call returns an independent sequence.
func (c Coord) Path(directions []Direction) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		current := c
		for _, d := range directions {
			current = current.Step(d)
			if !yield(current) {
				return
			}
		}
	}
}

// Hops is the minimal number of steps needed to get to c from the origin.
func (c Coord) Hops() int {
	absX, absY := Abs(c.X), Abs(c.Y)
	m := Min(absX, absY)
	return m + (absY-m)/2
}

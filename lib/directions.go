package lib

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of six neighbouring hexes.
type Direction int

const (
	North Direction = iota
	NorthWest
	NorthEast
	South
	SouthWest
	SouthEast
)

var directionLabels = [...]string{"n", "nw", "ne", "s", "sw", "se"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionLabels) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionLabels[d]
}

// ParseError is returned for a token which is not one of the direction labels.
type ParseError struct {
	Token string
	// Position of the token in the comma separated input.
	Index int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot understand direction %q at position %d", e.Token, e.Index)
}

func ParseDirection(token string) (Direction, error) {
	switch token {
	case "n":
		return North, nil
	case "nw":
		return NorthWest, nil
	case "ne":
		return NorthEast, nil
	case "s":
		return South, nil
	case "sw":
		return SouthWest, nil
	case "se":
		return SouthEast, nil
	}
	return 0, &ParseError{Token: token}
}

// ParseDirectionList parses comma separated direction labels.
// Tokens are not trimmed, so an empty input or a stray comma is an error.
// Parsing stops at the first invalid token.
func ParseDirectionList(text string) ([]Direction, error) {
	tokens := strings.Split(text, ",")
	directions := make([]Direction, 0, len(tokens))
	for i, token := range tokens {
		d, err := ParseDirection(token)
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				parseErr.Index = i
			}
			return nil, err
		}
		directions = append(directions, d)
	}
	return directions, nil
}

package grid

import (
	"fmt"
	"strings"
)

// TileState is the paintable value of a single cell.
type TileState uint8

const (
	Empty TileState = iota
	Rail
	Building
	Station

	tileStateCount
)

// States lists every tile state in cycle order.
var States = []TileState{Empty, Rail, Building, Station}

func (s TileState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Rail:
		return "Rail"
	case Building:
		return "Building"
	case Station:
		return "Station"
	default:
		return fmt.Sprintf("TileState(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the four known states.
func (s TileState) Valid() bool {
	return s < tileStateCount
}

// Next returns the state that follows s in cycle order, wrapping Station to Empty.
func (s TileState) Next() TileState {
	return (s + 1) % tileStateCount
}

// ParseTileState accepts a state name ("rail", "Station", ...) case-insensitively.
func ParseTileState(name string) (TileState, error) {
	n := strings.TrimSpace(name)
	for _, s := range States {
		if strings.EqualFold(n, s.String()) {
			return s, nil
		}
	}
	return Empty, fmt.Errorf("parse tile state %q: %w", name, ErrInvalidState)
}

package models

import (
	"fmt"
	"strings"
)

// ShipID labels a ship on one board: S1, S2, ...
type ShipID string

// NewShipID returns the id of the n-th ship of a fleet, counting from 1.
func NewShipID(n int) ShipID {
	return ShipID(fmt.Sprintf("S%d", n))
}

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func ParseOrientation(raw string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "H":
		return Horizontal, nil
	case "V":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, raw)
}

func (o Orientation) String() string {
	if o == Vertical {
		return "V"
	}
	return "H"
}

// span lists the cells a ship of the given length covers from at.
func (o Orientation) span(at Coord, length int) []Coord {
	dr, dc := 0, 1
	if o == Vertical {
		dr, dc = 1, 0
	}
	cells := make([]Coord, length)
	for i := range cells {
		cells[i] = Coord{Row: at.Row + dr*i, Col: at.Col + dc*i}
	}
	return cells
}

// CanPlace checks that every cell of the ship is on the board and water.
func (b *Board) CanPlace(at Coord, length int, o Orientation) error {
	if length < 1 {
		return fmt.Errorf("%w: length %d", ErrIllegalPlacement, length)
	}
	for _, c := range o.span(at, length) {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: out of bounds", ErrIllegalPlacement)
		}
		if cell := b.cells[c.Row][c.Col]; cell.Kind != Water {
			return fmt.Errorf("%w: overlaps %s", ErrIllegalPlacement, cell.Ship)
		}
	}
	return nil
}

// PlaceShip writes id into every covered cell. The board is untouched when
// the placement is illegal.
func (b *Board) PlaceShip(id ShipID, at Coord, length int, o Orientation) error {
	if err := b.CanPlace(at, length, o); err != nil {
		return err
	}
	for _, c := range o.span(at, length) {
		b.cells[c.Row][c.Col] = Cell{Kind: ShipCell, Ship: id}
	}
	return nil
}

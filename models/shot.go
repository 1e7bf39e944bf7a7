package models

import "fmt"

type Shot struct {
	Hit  bool
	Ship ShipID
}

// Fire resolves a shot against a ship board. Cells that were already fired
// at are rejected with ErrDuplicateShot and left as they are.
func (b *Board) Fire(c Coord) (Shot, error) {
	if !b.InBounds(c) {
		return Shot{}, fmt.Errorf("%w: row %d col %d", ErrOutOfRangeCoordinate, c.Row, c.Col)
	}

	cell := &b.cells[c.Row][c.Col]
	switch cell.Kind {
	case ShipCell:
		cell.Kind = Hit
		return Shot{Hit: true, Ship: cell.Ship}, nil
	case Water:
		cell.Kind = Miss
		return Shot{}, nil
	}
	return Shot{}, ErrDuplicateShot
}

// Mark records a shot result on a tracking board. Hits are stored without
// a ship id.
func (b *Board) Mark(c Coord, hit bool) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfRangeCoordinate, c.Row, c.Col)
	}
	if b.cells[c.Row][c.Col].Kind != Water {
		return ErrDuplicateShot
	}
	if hit {
		b.cells[c.Row][c.Col] = Cell{Kind: Hit}
	} else {
		b.cells[c.Row][c.Col] = Cell{Kind: Miss}
	}
	return nil
}

package models

import (
	"fmt"
	"strings"
)

type CellKind uint8

const (
	Water CellKind = iota
	ShipCell
	Hit
	Miss
)

// Cell is one board square. Ship names the occupant for ShipCell and Hit
// cells and is empty otherwise.
type Cell struct {
	Kind CellKind
	Ship ShipID
}

// Fired reports whether the cell has already taken a shot.
func (c Cell) Fired() bool {
	return c.Kind == Hit || c.Kind == Miss
}

func (c Cell) Glyph() string {
	switch c.Kind {
	case ShipCell:
		return string(c.Ship)
	case Hit:
		return "X"
	case Miss:
		return "O"
	default:
		return "~"
	}
}

type Board struct {
	columns string
	cells   [][]Cell
}

func NewBoard(r Rules) *Board {
	cells := make([][]Cell, r.BoardSize)
	for i := range cells {
		cells[i] = make([]Cell, r.BoardSize)
	}
	return &Board{columns: r.Columns, cells: cells}
}

func (b *Board) Size() int {
	return len(b.cells)
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(b.cells) && c.Col >= 0 && c.Col < len(b.cells)
}

// At returns the cell at c; out-of-bounds positions read as water.
func (b *Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.cells[c.Row][c.Col]
}

// ShipCellsRemaining counts ship cells that have not been hit.
func (b *Board) ShipCellsRemaining() int {
	var n int
	for _, row := range b.cells {
		for _, c := range row {
			if c.Kind == ShipCell {
				n++
			}
		}
	}
	return n
}

// ShipCells groups the coordinates of every placed ship, hit or not.
func (b *Board) ShipCells() map[ShipID][]Coord {
	ships := make(map[ShipID][]Coord)
	for r, row := range b.cells {
		for c, cell := range row {
			if cell.Ship != "" {
				ships[cell.Ship] = append(ships[cell.Ship], Coord{Row: r, Col: c})
			}
		}
	}
	return ships
}

func (b *Board) String() string {
	var sb strings.Builder
	letters := make([]string, len(b.cells))
	for i := range letters {
		letters[i] = string(b.columns[i])
	}
	sb.WriteString("  " + strings.Join(letters, " ") + "\n")

	glyphs := make([]string, len(b.cells))
	for r, row := range b.cells {
		for c, cell := range row {
			glyphs[c] = cell.Glyph()
		}
		fmt.Fprintf(&sb, "%2d %s\n", r+1, strings.Join(glyphs, " "))
	}
	return sb.String()
}

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrCoordinateTooShort is a malformed coordinate with no room for a row.
var ErrCoordinateTooShort = fmt.Errorf("%w: too short", ErrMalformedCoordinate)

// Coord is a zero-based board position.
type Coord struct {
	Row int
	Col int
}

// ParseCoord decodes labels such as "a5" or " J10 " into zero-based indices.
func (r Rules) ParseCoord(raw string) (Coord, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 2 {
		return Coord{}, ErrCoordinateTooShort
	}

	letter, digits := s[0], s[1:]
	if letter < 'A' || letter > 'Z' {
		return Coord{}, fmt.Errorf("%w: column %q is not a letter", ErrMalformedCoordinate, letter)
	}
	if !isDigits(digits) {
		return Coord{}, fmt.Errorf("%w: row %q is not a number", ErrMalformedCoordinate, digits)
	}

	col := strings.IndexByte(r.Columns, letter)
	if col < 0 {
		return Coord{}, fmt.Errorf("%w: column %c", ErrOutOfRangeCoordinate, letter)
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > r.BoardSize {
		return Coord{}, fmt.Errorf("%w: row %s", ErrOutOfRangeCoordinate, digits)
	}
	return Coord{Row: row - 1, Col: col}, nil
}

// FormatCoord is the inverse of ParseCoord for in-bounds coordinates.
func (r Rules) FormatCoord(c Coord) string {
	if c.Col < 0 || c.Col >= len(r.Columns) {
		return fmt.Sprintf("?%d", c.Row+1)
	}
	return fmt.Sprintf("%c%d", r.Columns[c.Col], c.Row+1)
}

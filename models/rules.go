package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Rules holds the fixed parameters of a game. It is passed by value and
// never modified after construction.
type Rules struct {
	BoardSize int
	Columns   string
	fleets    map[int][]int
}

func DefaultRules() Rules {
	return Rules{
		BoardSize: 10,
		Columns:   "ABCDEFGHIJ",
		fleets: map[int][]int{
			1: {1},
			2: {1, 2},
			3: {1, 2, 3},
			4: {1, 2, 3, 4},
			5: {1, 2, 3, 4, 5},
		},
	}
}

// NewRules builds a custom rule set. The fleet table is copied.
func NewRules(boardSize int, columns string, fleets map[int][]int) (Rules, error) {
	r := Rules{BoardSize: boardSize, Columns: columns, fleets: make(map[int][]int, len(fleets))}
	for n, sizes := range fleets {
		r.fleets[n] = append([]int(nil), sizes...)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (r Rules) Validate() error {
	if r.BoardSize < 1 || r.BoardSize > 26 {
		return fmt.Errorf("board size must be between 1 and 26, got %d", r.BoardSize)
	}
	if len(r.Columns) != r.BoardSize {
		return fmt.Errorf("expected %d column letters, got %q", r.BoardSize, r.Columns)
	}
	for i := 0; i < len(r.Columns); i++ {
		letter := r.Columns[i]
		if letter < 'A' || letter > 'Z' {
			return fmt.Errorf("column %q is not an upper-case letter", letter)
		}
		if strings.IndexByte(r.Columns[:i], letter) >= 0 {
			return fmt.Errorf("column %c appears twice", letter)
		}
	}
	if len(r.fleets) == 0 {
		return fmt.Errorf("fleet table is empty")
	}
	for n, sizes := range r.fleets {
		if len(sizes) == 0 {
			return fmt.Errorf("fleet %d has no ships", n)
		}
		for _, s := range sizes {
			if s < 1 || s > r.BoardSize {
				return fmt.Errorf("fleet %d: ship length %d does not fit the board", n, s)
			}
		}
	}
	return nil
}

// FleetSizes returns the ship lengths for fleet n, in placement order.
func (r Rules) FleetSizes(n int) ([]int, error) {
	sizes, ok := r.fleets[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFleetSize, n)
	}
	return append([]int(nil), sizes...), nil
}

func (r Rules) MinFleet() int {
	keys := r.fleetKeys()
	if len(keys) == 0 {
		return 0
	}
	return keys[0]
}

func (r Rules) MaxFleet() int {
	keys := r.fleetKeys()
	if len(keys) == 0 {
		return 0
	}
	return keys[len(keys)-1]
}

func (r Rules) fleetKeys() []int {
	keys := make([]int, 0, len(r.fleets))
	for n := range r.fleets {
		keys = append(keys, n)
	}
	sort.Ints(keys)
	return keys
}

// ParseFleetSize accepts a decimal fleet number present in the fleet table.
func (r Rules) ParseFleetSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if !isDigits(raw) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFleetSize, raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFleetSize, raw)
	}
	if _, ok := r.fleets[n]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFleetSize, n)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

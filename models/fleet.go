package models

// Fleet tracks how many unhit cells each ship of one player has left.
type Fleet struct {
	order     []ShipID
	remaining map[ShipID]int
}

// NewFleet names ships S1..Sn after the order of sizes.
func NewFleet(sizes []int) *Fleet {
	f := &Fleet{
		order:     make([]ShipID, len(sizes)),
		remaining: make(map[ShipID]int, len(sizes)),
	}
	for i, size := range sizes {
		id := NewShipID(i + 1)
		f.order[i] = id
		f.remaining[id] = size
	}
	return f
}

// Decrement removes one cell from ship id and reports whether that sank it.
// Unknown ids and ships already at zero are ignored.
func (f *Fleet) Decrement(id ShipID) bool {
	n, ok := f.remaining[id]
	if !ok || n == 0 {
		return false
	}
	f.remaining[id] = n - 1
	return n == 1
}

func (f *Fleet) Remaining(id ShipID) int {
	return f.remaining[id]
}

func (f *Fleet) Ships() []ShipID {
	return append([]ShipID(nil), f.order...)
}

// Afloat counts ships with at least one unhit cell.
func (f *Fleet) Afloat() int {
	var n int
	for _, id := range f.order {
		if f.remaining[id] > 0 {
			n++
		}
	}
	return n
}

func (f *Fleet) IsDestroyed() bool {
	return f.Afloat() == 0
}

package models

import "testing"

func TestNewFleet(t *testing.T) {
	fleet := NewFleet([]int{1, 2, 3})

	expected := []ShipID{"S1", "S2", "S3"}
	ships := fleet.Ships()
	if len(ships) != len(expected) {
		t.Fatalf("expected %d ships, got %d", len(expected), len(ships))
	}
	for i, id := range expected {
		if ships[i] != id {
			t.Fatalf("ship %d: expected %s, got %s", i, id, ships[i])
		}
		if fleet.Remaining(id) != i+1 {
			t.Fatalf("%s: expected %d remaining, got %d", id, i+1, fleet.Remaining(id))
		}
	}
	if fleet.IsDestroyed() {
		t.Fatal("new fleet should not be destroyed")
	}
}

func TestFleetDecrement(t *testing.T) {
	fleet := NewFleet([]int{1, 2})

	if fleet.Decrement("S2") {
		t.Fatal("S2 should survive its first hit")
	}
	if !fleet.Decrement("S1") {
		t.Fatal("S1 should sink on its only hit")
	}
	if fleet.Afloat() != 1 || fleet.IsDestroyed() {
		t.Fatalf("expected one ship afloat, got %d", fleet.Afloat())
	}

	// No-ops
	if fleet.Decrement("S1") {
		t.Fatal("sunk ship cannot sink twice")
	}
	if fleet.Decrement("S9") {
		t.Fatal("unknown ship cannot sink")
	}
	if fleet.Remaining("S1") != 0 {
		t.Fatalf("expected S1 to stay at zero, got %d", fleet.Remaining("S1"))
	}

	if !fleet.Decrement("S2") {
		t.Fatal("S2 should sink on its last cell")
	}
	if !fleet.IsDestroyed() {
		t.Fatal("fleet should be destroyed once every ship is at zero")
	}
}

func TestFleetShipsIsACopy(t *testing.T) {
	fleet := NewFleet([]int{1})
	fleet.Ships()[0] = "S7"
	if fleet.Ships()[0] != "S1" {
		t.Fatal("Ships exposed internal state")
	}
}

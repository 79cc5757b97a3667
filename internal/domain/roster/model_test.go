package roster

import (
	"reflect"
	"testing"
)

func TestFieldPositions(t *testing.T) {
	base := []Position{
		PositionPitcher, PositionCatcher, PositionFirstBase, PositionSecondBase,
		PositionThirdBase, PositionShortstop, PositionLeftField, PositionCenterField,
		PositionRightField,
	}

	got, err := FieldPositions(9)
	if err != nil {
		t.Fatalf("FieldPositions(9): %v", err)
	}
	if !reflect.DeepEqual(got, base) {
		t.Fatalf("FieldPositions(9) = %v", got)
	}

	got, err = FieldPositions(10)
	if err != nil {
		t.Fatalf("FieldPositions(10): %v", err)
	}
	if got[9] != PositionExtraHitter {
		t.Fatalf("tenth position = %s, want %s", got[9], PositionExtraHitter)
	}

	got, err = FieldPositions(11)
	if err != nil {
		t.Fatalf("FieldPositions(11): %v", err)
	}
	if got[10] != PositionExtraHitter2 {
		t.Fatalf("eleventh position = %s, want %s", got[10], PositionExtraHitter2)
	}

	for _, n := range []int{8, 12} {
		if _, err := FieldPositions(n); err == nil {
			t.Fatalf("FieldPositions(%d) accepted", n)
		}
	}
}

func TestPlayerValidate(t *testing.T) {
	p := Player{TeamPlayerID: "p1", TeamID: "t1", Name: "Sam", JerseyNumber: 12}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	bad := p
	bad.Name = ""
	if err := bad.Validate(); err == nil {
		t.Fatalf("player without name accepted")
	}

	bad = p
	bad.JerseyNumber = 120
	if err := bad.Validate(); err == nil {
		t.Fatalf("jersey 120 accepted")
	}
}

package lineup

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dugouthq/dugout/internal/domain/roster"
)

func TestFlattenReconstructRoundTrip(t *testing.T) {
	for _, playerCount := range []int{9, 12} {
		_, l := generateFixture(t, playerCount)

		rows := Flatten(l)
		wantRows := l.Config.Innings * playerCount
		if len(rows) != wantRows {
			t.Fatalf("%d players: got %d rows, want %d", playerCount, len(rows), wantRows)
		}

		header := GameLineup{TeamID: l.TeamID, Config: l.Config, Notes: l.Notes}
		got, err := Reconstruct(header, rows)
		if err != nil {
			t.Fatalf("Reconstruct: %v", err)
		}
		if !reflect.DeepEqual(got, l) {
			t.Fatalf("%d players: round trip differs\n got %#v\nwant %#v", playerCount, got, l)
		}
	}
}

func TestFlattenMarksBenchInnings(t *testing.T) {
	_, l := generateFixture(t, 12)

	rows := Flatten(l)
	benchRows := 0
	for _, row := range rows {
		if row.Position == roster.PositionBench {
			benchRows++
		}
	}
	if benchRows != 18 {
		t.Fatalf("got %d bench rows, want 18", benchRows)
	}
}

func TestFlattenRepeatsBattingOrderOnEveryRow(t *testing.T) {
	_, l := generateFixture(t, 10)

	byPlayer := make(map[string]int, len(l.BattingOrder))
	for _, slot := range l.BattingOrder {
		byPlayer[slot.TeamPlayerID] = slot.OrderIndex
	}

	for _, row := range Flatten(l) {
		if row.BattingOrder == nil {
			t.Fatalf("player %s inning %d missing batting order", row.TeamPlayerID, row.Inning)
		}
		if *row.BattingOrder != byPlayer[row.TeamPlayerID] {
			t.Fatalf("player %s inning %d has batting order %d, want %d",
				row.TeamPlayerID, row.Inning, *row.BattingOrder, byPlayer[row.TeamPlayerID])
		}
	}
}

func TestReconstructRejectsOutOfRangeInning(t *testing.T) {
	_, l := generateFixture(t, 9)

	rows := Flatten(l)
	rows[0].Inning = l.Config.Innings + 1
	_, err := Reconstruct(GameLineup{TeamID: l.TeamID, Config: l.Config}, rows)
	if !errors.Is(err, ErrMalformedAssignments) {
		t.Fatalf("got err = %v, want ErrMalformedAssignments", err)
	}
}

func TestReconstructRejectsIncompleteField(t *testing.T) {
	_, l := generateFixture(t, 9)

	rows := Flatten(l)
	_, err := Reconstruct(GameLineup{TeamID: l.TeamID, Config: l.Config}, rows[:len(rows)-1])
	if !errors.Is(err, ErrMalformedAssignments) {
		t.Fatalf("got err = %v, want ErrMalformedAssignments", err)
	}
}

func TestReconstructRejectsConflictingBattingOrder(t *testing.T) {
	_, l := generateFixture(t, 9)

	rows := Flatten(l)
	bad := 99
	last := len(rows) - 1
	rows[last].BattingOrder = &bad
	_, err := Reconstruct(GameLineup{TeamID: l.TeamID, Config: l.Config}, rows)
	if !errors.Is(err, ErrMalformedAssignments) {
		t.Fatalf("got err = %v, want ErrMalformedAssignments", err)
	}
}

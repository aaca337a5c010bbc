package mines_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tomasstrnad1997/termines/mines"
)

// scriptedRand replays values, reduced modulo n.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// Mines at (0,0) and (0,2) on a 5x5 field started from the bottom right
// corner. The duplicate 0 exercises the rejection loop.
func createScriptedField(t *testing.T) *mines.Field {
	t.Helper()
	params := mines.FieldParams{Width: 5, Height: 5, Mines: 2, StartRow: 4, StartCol: 4}
	field, err := mines.NewField(params, &scriptedRand{values: []int{0, 0, 2}})
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	return field
}

func minePositions(field *mines.Field) []mines.Coord {
	var positions []mines.Coord
	field.Cells(func(row, col int, cell mines.Cell) {
		if cell.Content == mines.Mine {
			positions = append(positions, mines.Coord{Row: row, Col: col})
		}
	})
	return positions
}

func TestScriptedLayout(t *testing.T) {
	field := createScriptedField(t)
	positions := minePositions(field)
	expected := []mines.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}}
	if len(positions) != len(expected) {
		t.Fatalf("Expected mines at %v, got %v", expected, positions)
	}
	for i := range expected {
		if positions[i] != expected[i] {
			t.Fatalf("Expected mines at %v, got %v", expected, positions)
		}
	}
	if field.ClosedRemaining() != 3 {
		t.Fatalf("Expected 3 closed cells after the first open, got %d", field.ClosedRemaining())
	}
	if field.FlagsRemaining() != 2 {
		t.Fatalf("Expected 2 flags, got %d", field.FlagsRemaining())
	}
}

func TestMineCount(t *testing.T) {
	for _, preset := range mines.Presets {
		for seed := uint64(0); seed < 25; seed++ {
			field, err := mines.NewField(preset.Params, mines.NewRand(seed))
			if err != nil {
				t.Fatalf("%s seed %d: failed to create field: %v", preset.Name, seed, err)
			}
			if got := len(minePositions(field)); got != preset.Params.Mines {
				t.Fatalf("%s seed %d: expected %d mines, got %d", preset.Name, seed, preset.Params.Mines, got)
			}
		}
	}
}

func TestStartAreaIsSafe(t *testing.T) {
	params := []mines.FieldParams{
		{Width: 9, Height: 9, Mines: 10, StartRow: 5, StartCol: 5},
		{Width: 5, Height: 5, Mines: 16, StartRow: 2, StartCol: 2},
		{Width: 4, Height: 4, Mines: 12, StartRow: 0, StartCol: 0},
		{Width: 6, Height: 3, Mines: 12, StartRow: 2, StartCol: 5},
	}
	for _, p := range params {
		for seed := uint64(0); seed < 50; seed++ {
			field, err := mines.NewField(p, mines.NewRand(seed))
			if err != nil {
				t.Fatalf("%+v seed %d: failed to create field: %v", p, seed, err)
			}
			for row := p.StartRow - 1; row <= p.StartRow+1; row++ {
				for col := p.StartCol - 1; col <= p.StartCol+1; col++ {
					if !field.IsValid(row, col) {
						continue
					}
					if field.Cell(row, col).Content == mines.Mine {
						t.Fatalf("%+v seed %d: mine at (%d, %d) next to the start cell", p, seed, row, col)
					}
				}
			}
			if got := len(minePositions(field)); got != p.Mines {
				t.Fatalf("%+v seed %d: expected %d mines, got %d", p, seed, p.Mines, got)
			}
		}
	}
}

func TestRelocationIsRowMajor(t *testing.T) {
	// Mines drawn at (1,1) and (0,0), both next to the start cell (1,1).
	params := mines.FieldParams{Width: 4, Height: 4, Mines: 2, StartRow: 1, StartCol: 1}
	field, err := mines.NewField(params, &scriptedRand{values: []int{5, 0}})
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	positions := minePositions(field)
	expected := []mines.Coord{{Row: 0, Col: 3}, {Row: 1, Col: 3}}
	if len(positions) != 2 || positions[0] != expected[0] || positions[1] != expected[1] {
		t.Fatalf("Expected relocated mines at %v, got %v", expected, positions)
	}
}

func TestNumbersMatchNeighbours(t *testing.T) {
	field, err := mines.NewField(mines.Expert.Params, mines.NewRand(42))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	field.Cells(func(row, col int, cell mines.Cell) {
		if cell.Content == mines.Mine {
			return
		}
		count := 0
		for r := row - 1; r <= row+1; r++ {
			for c := col - 1; c <= col+1; c++ {
				if field.IsValid(r, c) && field.Cell(r, c).Content == mines.Mine {
					count++
				}
			}
		}
		switch {
		case count == 0 && cell.Content != mines.Empty:
			t.Fatalf("(%d, %d) has no mines around but is not empty", row, col)
		case count > 0 && (cell.Content != mines.Number || cell.Number != count):
			t.Fatalf("(%d, %d) expected number %d, got %v/%d", row, col, count, cell.Content, cell.Number)
		}
	})
}

func TestBeginnerStartNeverHitsMine(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		field, err := mines.NewField(mines.Beginner.Params, mines.NewRand(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if field.Cell(5, 5).Visibility != mines.Open {
			t.Fatalf("seed %d: start cell is not open", seed)
		}
		if err := field.Open(5, 5); err != nil {
			t.Fatalf("seed %d: reopening the start cell failed: %v", seed, err)
		}
	}
}

func TestInvalidParams(t *testing.T) {
	invalid := []mines.FieldParams{
		{Width: 0, Height: 5, Mines: 1},
		{Width: 5, Height: -1, Mines: 1},
		{Width: 5, Height: 5, Mines: -1},
		{Width: 5, Height: 5, Mines: 25},
		{Width: 5, Height: 5, Mines: 1, StartRow: 5, StartCol: 0},
		{Width: 4, Height: 4, Mines: 8, StartRow: 1, StartCol: 1},
	}
	for _, p := range invalid {
		_, err := mines.NewField(p, mines.NewRand(1))
		var paramsErr *mines.InvalidFieldParamsError
		if !errors.As(err, &paramsErr) {
			t.Fatalf("%+v: expected InvalidFieldParamsError, got %v", p, err)
		}
		if paramsErr.Error() == "Cannot construct field: unknown error" {
			t.Fatalf("%+v: error message not specific", p)
		}
	}
}

func TestFindPreset(t *testing.T) {
	for _, name := range []string{"b", "B", "beginner", " Beginner\n"} {
		p, ok := mines.FindPreset(name)
		if !ok || p.Name != "Beginner" {
			t.Fatalf("Expected Beginner for %q, got %v", name, p)
		}
	}
	if p, ok := mines.FindPreset("e"); !ok || p.Params.Width != 30 || p.Params.Height != 16 || p.Params.Mines != 99 {
		t.Fatalf("Unexpected expert preset %+v", p)
	}
	if _, ok := mines.FindPreset("x"); ok {
		t.Fatalf("Unknown preset was found")
	}
}

func TestFieldCreatedLogsLayout(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	params := mines.FieldParams{Width: 5, Height: 5, Mines: 2, StartRow: 4, StartCol: 4}
	if _, err := mines.NewField(params, &scriptedRand{values: []int{0, 0, 2}}, mines.WithLogger(logger)); err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Message != "field created" {
		t.Fatalf("Field creation not logged: %+v", entry)
	}
	expected := "O#O##\n#####\n#####\n#####\n#####\n"
	if entry.Data["layout"] != expected {
		t.Fatalf("Unexpected layout %q", entry.Data["layout"])
	}
	if entry.Data["relocated"] != 0 {
		t.Fatalf("Unexpected relocation count %v", entry.Data["relocated"])
	}
}

package mines_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tomasstrnad1997/termines/mines"
)

func visibilities(field *mines.Field) [][]mines.Visibility {
	grid := make([][]mines.Visibility, field.Height)
	for row := range grid {
		grid[row] = make([]mines.Visibility, field.Width)
	}
	field.Cells(func(row, col int, cell mines.Cell) {
		grid[row][col] = cell.Visibility
	})
	return grid
}

func TestOpenMineDoesNotMutate(t *testing.T) {
	field := createScriptedField(t)
	before := visibilities(field)
	err := field.Open(0, 0)
	if !errors.Is(err, mines.ErrMineHit) {
		t.Fatalf("Expected ErrMineHit, got %v", err)
	}
	after := visibilities(field)
	for row := range before {
		for col := range before[row] {
			if before[row][col] != after[row][col] {
				t.Fatalf("Visibility of (%d, %d) changed after hitting a mine", row, col)
			}
		}
	}
}

func TestCascadeStopsAtNumbers(t *testing.T) {
	field := createScriptedField(t)
	var buf bytes.Buffer
	field.Print(&buf)
	expected := "X01234\n" +
		"0###1.\n" +
		"11211.\n" +
		"2.....\n" +
		"3.....\n" +
		"4.....\n"
	if buf.String() != expected {
		t.Fatalf("Unexpected field after first open:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestFlagRoundTrip(t *testing.T) {
	field := createScriptedField(t)
	before := field.FlagsRemaining()
	field.Flag(0, 0)
	if field.Cell(0, 0).Visibility != mines.Flagged {
		t.Fatalf("Cell was not flagged")
	}
	if field.FlagsRemaining() != before-1 {
		t.Fatalf("Expected %d flags remaining, got %d", before-1, field.FlagsRemaining())
	}
	field.Flag(0, 0)
	if field.Cell(0, 0).Visibility != mines.Closed {
		t.Fatalf("Cell was not unflagged")
	}
	if field.FlagsRemaining() != before {
		t.Fatalf("Expected %d flags remaining, got %d", before, field.FlagsRemaining())
	}
}

func TestFlagRoundTripOnPreset(t *testing.T) {
	field, err := mines.NewField(mines.Beginner.Params, mines.NewRand(7))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	before := field.FlagsRemaining()
	visibility := field.Cell(0, 0).Visibility
	field.Flag(0, 0)
	field.Flag(0, 0)
	if field.FlagsRemaining() != before || field.Cell(0, 0).Visibility != visibility {
		t.Fatalf("Flagging twice did not restore the cell")
	}
}

func TestFlagOpenCellIsNoop(t *testing.T) {
	field := createScriptedField(t)
	field.Flag(4, 4)
	if field.Cell(4, 4).Visibility != mines.Open {
		t.Fatalf("Open cell changed visibility")
	}
	if field.FlagsRemaining() != 2 {
		t.Fatalf("Flag counter changed on an open cell")
	}
}

func TestFlagsMayGoNegative(t *testing.T) {
	field := createScriptedField(t)
	field.Flag(0, 0)
	field.Flag(0, 1)
	field.Flag(0, 2)
	if field.FlagsRemaining() != -1 {
		t.Fatalf("Expected -1 flags remaining, got %d", field.FlagsRemaining())
	}
	if field.MinesRemaining() != 0 {
		t.Fatalf("Expected no unflagged mines, got %d", field.MinesRemaining())
	}
}

func TestOpenFlaggedCellIsNoop(t *testing.T) {
	field := createScriptedField(t)
	field.Flag(0, 1)
	if err := field.Open(0, 1); err != nil {
		t.Fatalf("Opening a flagged cell failed: %v", err)
	}
	if field.Cell(0, 1).Visibility != mines.Flagged {
		t.Fatalf("Flagged cell was opened")
	}
}

func TestOpenFlaggedMineIsNoop(t *testing.T) {
	field := createScriptedField(t)
	field.Flag(0, 0)
	if err := field.Open(0, 0); err != nil {
		t.Fatalf("Opening a flagged mine failed: %v", err)
	}
	if field.Cell(0, 0).Visibility != mines.Flagged || field.FlagsRemaining() != 1 {
		t.Fatalf("Flagged mine changed: %v, %d flags", field.Cell(0, 0).Visibility, field.FlagsRemaining())
	}
	result, err := field.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}
	if result.Result != mines.NoChange {
		t.Fatalf("Expected no change, got %v", result.Result)
	}
}

func TestChordNeedsExactFlags(t *testing.T) {
	field := createScriptedField(t)
	field.Flag(0, 0)
	if err := field.Open(1, 1); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if field.Cell(0, 1).Visibility != mines.Closed {
		t.Fatalf("Unsatisfied number opened its neighbours")
	}
	field.Flag(0, 2)
	if err := field.Open(1, 1); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if field.Cell(0, 1).Visibility != mines.Open {
		t.Fatalf("Satisfied number did not open its neighbours")
	}
	if !field.GameOver() {
		t.Fatalf("Expected the game to be won")
	}
}

func TestGameOverNeedsExactFlags(t *testing.T) {
	field := createScriptedField(t)
	if field.GameOver() {
		t.Fatalf("Game over before anything was flagged")
	}
	field.Flag(0, 0)
	field.Flag(0, 2)
	if field.GameOver() {
		t.Fatalf("Game over with a closed cell left")
	}
	field.Flag(0, 1)
	if field.GameOver() {
		t.Fatalf("Game over with a wrong flag")
	}
	if field.ClosedRemaining() != 0 || field.MinesRemaining() != 0 {
		t.Fatalf("Unexpected counters %d/%d", field.ClosedRemaining(), field.MinesRemaining())
	}
	field.Flag(0, 1)
	if err := field.Open(0, 1); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !field.GameOver() {
		t.Fatalf("Expected the game to be won")
	}
}

func TestRevealAllMines(t *testing.T) {
	field := createScriptedField(t)
	if err := field.Open(0, 2); !errors.Is(err, mines.ErrMineHit) {
		t.Fatalf("Expected ErrMineHit, got %v", err)
	}
	field.RevealAllMines()
	field.Cells(func(row, col int, cell mines.Cell) {
		if cell.Content == mines.Mine && cell.Visibility != mines.Open {
			t.Fatalf("Mine at (%d, %d) not revealed", row, col)
		}
	})
	if field.Cell(0, 1).Visibility != mines.Closed {
		t.Fatalf("Closed number was revealed")
	}
	if content, _, ok := field.Cell(0, 0).VisibleContent(); !ok || content != mines.Mine {
		t.Fatalf("Revealed mine is not visible")
	}
	if _, _, ok := field.Cell(0, 1).VisibleContent(); ok {
		t.Fatalf("Closed cell content is visible")
	}
}

func TestOpenOutOfRange(t *testing.T) {
	field := createScriptedField(t)
	var moveErr *mines.InvalidMoveError
	if err := field.Open(-1, 0); !errors.As(err, &moveErr) {
		t.Fatalf("Expected InvalidMoveError, got %v", err)
	}
	if field.IsValid(5, 0) || field.IsValid(0, 5) || !field.IsValid(4, 4) {
		t.Fatalf("IsValid does not match the field bounds")
	}
}

func TestCascadeOpensWholeRegion(t *testing.T) {
	params := mines.FieldParams{Width: 30, Height: 30, Mines: 0, StartRow: 0, StartCol: 0}
	field, err := mines.NewField(params, mines.NewRand(1))
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	if field.ClosedRemaining() != 0 {
		t.Fatalf("Expected the whole field open, %d cells closed", field.ClosedRemaining())
	}
	if !field.GameOver() {
		t.Fatalf("Mine free field should be won after the first open")
	}
}

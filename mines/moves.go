package mines

import (
	"errors"
	"fmt"
	"strings"
)

type MoveType byte

const (
	Reveal MoveType = 0x01
	Flag   MoveType = 0x02
)

type Move struct {
	Row  int
	Col  int
	Type MoveType
}

func (move Move) String() string {
	msg := fmt.Sprintf("(%d, %d) ", move.Row, move.Col)
	switch move.Type {
	case Reveal:
		return msg + "Reveal"
	case Flag:
		return msg + "Flag"
	default:
		return msg + "UNKNOWN"
	}
}

type MoveResultType int

const (
	NoChange MoveResultType = iota
	MineBlown
	CellRevealed
	CellFlagged
	CellUnflagged
	GameWon
)

func (r MoveResultType) String() string {
	switch r {
	case NoChange:
		return "no change"
	case MineBlown:
		return "mine blown"
	case CellRevealed:
		return "cell revealed"
	case CellFlagged:
		return "flagged"
	case CellUnflagged:
		return "unflagged"
	case GameWon:
		return "game won"
	default:
		return "unknown"
	}
}

type MoveResult struct {
	Result       MoveResultType
	UpdatedCells []Coord
}

func (f *Field) Reveal(row, col int) (*MoveResult, error) {
	updated, err := f.open(row, col)
	if errors.Is(err, ErrMineHit) {
		return &MoveResult{MineBlown, updated}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return &MoveResult{NoChange, nil}, nil
	}
	return &MoveResult{f.resultOr(CellRevealed), updated}, nil
}

func (f *Field) ToggleFlag(row, col int) (*MoveResult, error) {
	if !f.IsValid(row, col) {
		return nil, &InvalidMoveError{f, row, col}
	}
	before := f.cells[row][col].Visibility
	f.Flag(row, col)
	switch before {
	case Closed:
		return &MoveResult{f.resultOr(CellFlagged), []Coord{{row, col}}}, nil
	case Flagged:
		return &MoveResult{f.resultOr(CellUnflagged), []Coord{{row, col}}}, nil
	default:
		return &MoveResult{NoChange, nil}, nil
	}
}

func (f *Field) resultOr(result MoveResultType) MoveResultType {
	if f.GameOver() {
		return GameWon
	}
	return result
}

func (f *Field) MakeMove(move Move) (*MoveResult, error) {
	switch move.Type {
	case Reveal:
		return f.Reveal(move.Row, move.Col)
	case Flag:
		return f.ToggleFlag(move.Row, move.Col)
	default:
		return nil, fmt.Errorf("Invalid move type %x", byte(move.Type))
	}
}

// ParseMove reads "row col" or "row col f".
func ParseMove(text string) (Move, error) {
	var row, col int
	var flag rune
	flag = 'X'
	n, _ := fmt.Sscanf(strings.TrimSpace(text), "%d %d %c", &row, &col, &flag)
	if n < 2 {
		return Move{}, fmt.Errorf("Incorrect input %q", text)
	}
	if flag == 'f' || flag == 'F' {
		return Move{row, col, Flag}, nil
	}
	return Move{row, col, Reveal}, nil
}

func (f *Field) ProcessTextCommand(text string) (*MoveResult, error) {
	move, err := ParseMove(text)
	if err != nil {
		return nil, err
	}
	return f.MakeMove(move)
}

package mines

import (
	"github.com/zyedidia/generic/mapset"
)

// Open opens the cell at (row, col) and cascades from it. Empty cells open
// their closed neighbours; a number only does so once exactly that many of
// its neighbours are flagged. Flagged cells, mines included, are left alone.
func (f *Field) Open(row, col int) error {
	_, err := f.open(row, col)
	return err
}

func (f *Field) open(row, col int) ([]Coord, error) {
	if !f.IsValid(row, col) {
		return nil, &InvalidMoveError{f, row, col}
	}
	if f.cells[row][col].Visibility == Flagged {
		return nil, nil
	}
	if f.cells[row][col].Content == Mine {
		return nil, ErrMineHit
	}

	var updated []Coord
	queued := mapset.New[Coord]()
	start := Coord{row, col}
	queue := []Coord{start}
	queued.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		cell := &f.cells[current.Row][current.Col]
		if cell.Content == Mine {
			return updated, ErrMineHit
		}
		if cell.Visibility != Open {
			cell.Visibility = Open
			updated = append(updated, current)
		}
		if cell.Content == Number && f.adjacentFlags(current.Row, current.Col) != cell.Number {
			continue
		}
		f.neighbours(current.Row, current.Col, func(r, c int) {
			n := &f.cells[r][c]
			if n.Visibility != Closed {
				return
			}
			switch n.Content {
			case Empty:
				next := Coord{r, c}
				if !queued.Has(next) {
					queued.Put(next)
					queue = append(queue, next)
				}
			case Number:
				n.Visibility = Open
				updated = append(updated, Coord{r, c})
			}
		})
	}
	return updated, nil
}

func (f *Field) adjacentFlags(row, col int) int {
	flags := 0
	f.neighbours(row, col, func(r, c int) {
		if f.cells[r][c].Visibility == Flagged {
			flags++
		}
	})
	return flags
}

// Flag toggles a flag on a closed cell. Open cells are not affected.
func (f *Field) Flag(row, col int) {
	if !f.IsValid(row, col) {
		return
	}
	cell := &f.cells[row][col]
	switch cell.Visibility {
	case Closed:
		cell.Visibility = Flagged
		f.flagsRemaining--
	case Flagged:
		cell.Visibility = Closed
		f.flagsRemaining++
	}
}

// FlagsRemaining is the number of mines minus the placed flags. It goes
// negative when more flags than mines are placed.
func (f *Field) FlagsRemaining() int {
	return f.flagsRemaining
}

// MinesRemaining counts the mines that are not flagged.
func (f *Field) MinesRemaining() int {
	remaining := 0
	for _, row := range f.cells {
		for _, cell := range row {
			if cell.Content == Mine && cell.Visibility != Flagged {
				remaining++
			}
		}
	}
	return remaining
}

func (f *Field) ClosedRemaining() int {
	remaining := 0
	for _, row := range f.cells {
		for _, cell := range row {
			if cell.Visibility == Closed {
				remaining++
			}
		}
	}
	return remaining
}

// GameOver reports a win: every mine flagged, every other cell open and no
// flag left over.
func (f *Field) GameOver() bool {
	return f.MinesRemaining() == 0 && f.ClosedRemaining() == 0 && f.flagsRemaining == 0
}

func (f *Field) RevealAllMines() {
	for row := range f.cells {
		for col := range f.cells[row] {
			if f.cells[row][col].Content == Mine {
				f.cells[row][col].Visibility = Open
			}
		}
	}
}

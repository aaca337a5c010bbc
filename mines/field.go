package mines

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type Content byte

const (
	Empty Content = iota
	Mine
	Number
)

type Visibility byte

const (
	Closed Visibility = iota
	Open
	Flagged
)

type Cell struct {
	Content    Content
	Number     int
	Visibility Visibility
}

type Coord struct {
	Row int
	Col int
}

type Field struct {
	Width          int
	Height         int
	Mines          int
	flagsRemaining int
	cells          [][]Cell
	log            logrus.FieldLogger
}

type Option func(*Field)

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *Field) {
		f.log = log
	}
}

func validParams(p FieldParams) bool {
	if p.Width <= 0 || p.Height <= 0 || p.Mines < 0 || p.Mines >= p.Width*p.Height {
		return false
	}
	if p.StartRow < 0 || p.StartRow >= p.Height || p.StartCol < 0 || p.StartCol >= p.Width {
		return false
	}
	return p.Mines <= p.Width*p.Height-safeZoneSize(p)
}

func safeZoneSize(p FieldParams) int {
	rows := min(p.StartRow+1, p.Height-1) - max(p.StartRow-1, 0) + 1
	cols := min(p.StartCol+1, p.Width-1) - max(p.StartCol-1, 0) + 1
	return rows * cols
}

// NewField builds a field with params.Mines mines drawn from rng, keeps the
// start cell and its neighbours free of mines and opens the start cell.
func NewField(params FieldParams, rng Rand, opts ...Option) (*Field, error) {
	if !validParams(params) {
		return nil, &InvalidFieldParamsError{params}
	}
	cells := make([][]Cell, params.Height)
	for row := range cells {
		cells[row] = make([]Cell, params.Width)
	}
	field := &Field{
		Width:          params.Width,
		Height:         params.Height,
		Mines:          params.Mines,
		flagsRemaining: params.Mines,
		cells:          cells,
		log:            logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(field)
	}

	field.placeMines(params.Mines, rng)
	field.computeNumbers()
	start := Coord{params.StartRow, params.StartCol}
	relocated := field.clearStartArea(start)
	var layout strings.Builder
	field.PrintRevealed(&layout)
	field.log.WithFields(logrus.Fields{
		"width":     field.Width,
		"height":    field.Height,
		"mines":     field.Mines,
		"relocated": relocated,
		"layout":    layout.String(),
	}).Debug("field created")

	if err := field.Open(start.Row, start.Col); err != nil {
		return nil, err
	}
	return field, nil
}

func (f *Field) placeMines(count int, rng Rand) {
	placed := 0
	for placed < count {
		position := rng.IntN(f.Width * f.Height)
		cell := &f.cells[position/f.Width][position%f.Width]
		if cell.Content != Mine {
			cell.Content = Mine
			placed++
		}
	}
}

func (f *Field) computeNumbers() {
	for row := range f.cells {
		for col := range f.cells[row] {
			cell := &f.cells[row][col]
			if cell.Content == Mine {
				continue
			}
			count := 0
			f.neighbours(row, col, func(r, c int) {
				if f.cells[r][c].Content == Mine {
					count++
				}
			})
			if count == 0 {
				cell.Content = Empty
				cell.Number = 0
			} else {
				cell.Content = Number
				cell.Number = count
			}
		}
	}
}

func inArea(center Coord, row, col int) bool {
	return row >= center.Row-1 && row <= center.Row+1 && col >= center.Col-1 && col <= center.Col+1
}

// clearStartArea moves every mine out of the 3x3 area around start. Each mine
// goes to the first non-mine cell outside that area in row-major order.
func (f *Field) clearStartArea(start Coord) int {
	relocated := 0
	for row := start.Row - 1; row <= start.Row+1; row++ {
		for col := start.Col - 1; col <= start.Col+1; col++ {
			if !f.IsValid(row, col) || f.cells[row][col].Content != Mine {
				continue
			}
			f.cells[row][col].Content = Empty
			f.placeFirstFree(start)
			relocated++
		}
	}
	if relocated > 0 {
		f.computeNumbers()
	}
	return relocated
}

func (f *Field) placeFirstFree(start Coord) {
	for row := range f.cells {
		for col := range f.cells[row] {
			if inArea(start, row, col) || f.cells[row][col].Content == Mine {
				continue
			}
			f.cells[row][col].Content = Mine
			return
		}
	}
}

func (f *Field) neighbours(row, col int, fn func(r, c int)) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r == row && c == col) || !f.IsValid(r, c) {
				continue
			}
			fn(r, c)
		}
	}
}

func (f *Field) IsValid(row, col int) bool {
	return row >= 0 && row < f.Height && col >= 0 && col < f.Width
}

// Cell returns a copy of the cell at (row, col).
func (f *Field) Cell(row, col int) Cell {
	return f.cells[row][col]
}

// Cells calls fn for every cell in row-major order.
func (f *Field) Cells(fn func(row, col int, cell Cell)) {
	for row := range f.cells {
		for col, cell := range f.cells[row] {
			fn(row, col, cell)
		}
	}
}

// VisibleContent reports the content of an open cell. Closed and flagged
// cells report ok == false.
func (c Cell) VisibleContent() (content Content, number int, ok bool) {
	if c.Visibility != Open {
		return Empty, 0, false
	}
	return c.Content, c.Number, true
}

package mines

import (
	"fmt"
	"io"
	"strconv"
)

// Print writes the player's view: '#' closed, 'F' flagged, '.' empty,
// '*' mine and digits for numbers. Row and column headers are taken mod 10.
func (f *Field) Print(w io.Writer) {
	fmt.Fprint(w, "X")
	for col := 0; col < f.Width; col++ {
		fmt.Fprint(w, col%10)
	}
	fmt.Fprintln(w)
	for row := 0; row < f.Height; row++ {
		fmt.Fprint(w, row%10)
		for col := 0; col < f.Width; col++ {
			fmt.Fprint(w, cellMark(f.cells[row][col]))
		}
		fmt.Fprintln(w)
	}
}

func cellMark(cell Cell) string {
	switch cell.Visibility {
	case Flagged:
		return "F"
	case Closed:
		return "#"
	}
	switch cell.Content {
	case Mine:
		return "*"
	case Number:
		return strconv.Itoa(cell.Number)
	default:
		return "."
	}
}

// PrintRevealed writes the mine layout regardless of visibility.
func (f *Field) PrintRevealed(w io.Writer) {
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			if f.cells[row][col].Content == Mine {
				fmt.Fprint(w, "O")
			} else {
				fmt.Fprint(w, "#")
			}
		}
		fmt.Fprintln(w)
	}
}

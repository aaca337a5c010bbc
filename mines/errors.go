package mines

import (
	"errors"
	"fmt"
)

// ErrMineHit is returned by Open when the opened cell, or a cell reached by
// its cascade, holds a mine.
var ErrMineHit = errors.New("mine hit")

type InvalidFieldParamsError struct {
	params FieldParams
}

type InvalidMoveError struct {
	field *Field
	row   int
	col   int
}

func (e InvalidMoveError) Error() string {
	return fmt.Sprintf("Move out of range - (%d, %d) - Field (%d, %d)", e.row, e.col, e.field.Height, e.field.Width)
}

func (e InvalidFieldParamsError) Error() string {
	p := e.params
	switch {
	case p.Width <= 0:
		return fmt.Sprintf("Cannot create a field with width: %d", p.Width)
	case p.Height <= 0:
		return fmt.Sprintf("Cannot create a field with height: %d", p.Height)
	case p.Mines < 0:
		return fmt.Sprintf("Cannot create a field with negative amount of mines: %d", p.Mines)
	case p.Mines >= p.Width*p.Height:
		return fmt.Sprintf("Not enough space for %d mines. (%d >= %d * %d)", p.Mines, p.Mines, p.Width, p.Height)
	case p.StartRow < 0 || p.StartRow >= p.Height || p.StartCol < 0 || p.StartCol >= p.Width:
		return fmt.Sprintf("Start cell (%d, %d) is outside of the field", p.StartRow, p.StartCol)
	case p.Mines > p.Width*p.Height-safeZoneSize(p):
		return fmt.Sprintf("Not enough space for %d mines outside of the start area (%d cells)", p.Mines, p.Width*p.Height-safeZoneSize(p))
	default:
		return "Cannot construct field: unknown error"
	}
}

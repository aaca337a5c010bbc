// Package session drives a single game: the cursor, the timer and the
// playing/won/lost transitions around a mines.Field.
package session

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/termines/mines"
)

type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Won         bool
	Duration    time.Duration
	CellsOpened int
}

type Session struct {
	Field  *mines.Field
	Preset mines.Preset
	Row    int
	Col    int

	state     State
	started   bool
	startedAt time.Time
	elapsed   time.Duration
	now       func() time.Time
	log       logrus.FieldLogger
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = log
	}
}

func New(field *mines.Field, preset mines.Preset, opts ...Option) *Session {
	s := &Session{
		Field:  field,
		Preset: preset,
		now:    time.Now,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("preset", preset.Name)
	s.Update()
	return s
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Finished() bool {
	return s.state != Playing
}

// Touch starts the timer on the first key press of the game.
func (s *Session) Touch() {
	if s.started || s.Finished() {
		return
	}
	s.started = true
	s.startedAt = s.now()
}

func (s *Session) Elapsed() time.Duration {
	if s.Finished() || !s.started {
		return s.elapsed
	}
	return s.now().Sub(s.startedAt)
}

// MoveCursor moves the cursor unless that would leave the field.
func (s *Session) MoveCursor(dRow, dCol int) {
	if s.Field.IsValid(s.Row+dRow, s.Col+dCol) {
		s.Row += dRow
		s.Col += dCol
	}
}

func (s *Session) Open() (*mines.MoveResult, error) {
	return s.move(mines.Reveal)
}

func (s *Session) Flag() (*mines.MoveResult, error) {
	return s.move(mines.Flag)
}

func (s *Session) move(moveType mines.MoveType) (*mines.MoveResult, error) {
	if s.Finished() {
		return &mines.MoveResult{Result: mines.NoChange}, nil
	}
	move := mines.Move{Row: s.Row, Col: s.Col, Type: moveType}
	result, err := s.Field.MakeMove(move)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"move":    move.String(),
		"result":  result.Result.String(),
		"updated": len(result.UpdatedCells),
	}).Debug("move")
	if result.Result == mines.MineBlown {
		s.Field.RevealAllMines()
		s.finish(Lost)
		return result, nil
	}
	s.Update()
	return result, nil
}

// Update checks for a win. It is called after every move and on every frame.
func (s *Session) Update() State {
	if s.state == Playing && s.Field.GameOver() {
		s.finish(Won)
	}
	return s.state
}

func (s *Session) finish(state State) {
	if s.started {
		s.elapsed = s.now().Sub(s.startedAt)
	}
	s.state = state
	s.log.WithFields(logrus.Fields{
		"state":   state.String(),
		"elapsed": s.elapsed,
	}).Info("game finished")
}

func (s *Session) Outcome() Outcome {
	opened := 0
	s.Field.Cells(func(row, col int, cell mines.Cell) {
		if cell.Visibility == mines.Open && cell.Content != mines.Mine {
			opened++
		}
	})
	return Outcome{
		Won:         s.state == Won,
		Duration:    s.Elapsed(),
		CellsOpened: opened,
	}
}

// Package tui is the terminal front end: the difficulty prompt, the board
// with its status line and the key handling loop.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/termines/config"
	"github.com/tomasstrnad1997/termines/mines"
	"github.com/tomasstrnad1997/termines/session"
	"github.com/tomasstrnad1997/termines/stats"
)

type Scoreboard interface {
	Record(ctx context.Context, r stats.Result) error
	Summary(ctx context.Context, preset string) (stats.Summary, error)
	Recent(ctx context.Context, n int) ([]stats.Result, error)
}

// recentGames is how many finished games the end screen lists.
const recentGames = 3

// FieldFactory builds the field for a new game.
type FieldFactory func(params mines.FieldParams) (*mines.Field, error)

type Options struct {
	Tick     time.Duration
	Keymap   config.Keymap
	Scores   Scoreboard
	NewField FieldFactory
	Log      logrus.FieldLogger
	// Preset skips the difficulty prompt when set.
	Preset *mines.Preset
	Clock  func() time.Time
}

type App struct {
	screen   tcell.Screen
	keys     keyBindings
	styles   styles
	tick     time.Duration
	scores   Scoreboard
	newField FieldFactory
	log      logrus.FieldLogger
	now      func() time.Time

	preset   *mines.Preset
	session  *session.Session
	recorded bool
	summary  stats.Summary
	recent   []stats.Result
	err      error
}

func New(screen tcell.Screen, opts Options) (*App, error) {
	keys, err := newKeyBindings(opts.Keymap.Keys)
	if err != nil {
		return nil, err
	}
	app := &App{
		screen:   screen,
		keys:     keys,
		styles:   newStyles(opts.Keymap.Theme),
		tick:     opts.Tick,
		scores:   opts.Scores,
		newField: opts.NewField,
		log:      opts.Log,
		now:      opts.Clock,
		preset:   opts.Preset,
	}
	if app.tick <= 0 {
		app.tick = 200 * time.Millisecond
	}
	if app.log == nil {
		app.log = logrus.StandardLogger()
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.newField == nil {
		app.newField = func(params mines.FieldParams) (*mines.Field, error) {
			return mines.NewField(params, mines.NewRand(uint64(time.Now().UnixNano())), mines.WithLogger(app.log))
		}
	}
	if app.preset != nil {
		if err := app.startGame(context.Background(), *app.preset); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Session is nil while the difficulty prompt is shown.
func (a *App) Session() *session.Session {
	return a.session
}

// Run draws and handles events until the player quits or ctx is done. The
// screen must already be initialised.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.ticker(ctx)

	for {
		a.Draw()
		if ctx.Err() != nil {
			return nil
		}
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ctx, ev) {
			return a.err
		}
	}
}

func (a *App) ticker(ctx context.Context) {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// wakes PollEvent so Run notices the cancellation
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return
		case <-ticker.C:
			if err := a.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				a.log.WithError(err).Debug("tick dropped")
			}
		}
	}
}

// HandleEvent applies one event and reports whether the loop should go on.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		a.refresh(ctx)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a.session == nil {
			return a.handlePrompt(ctx, ev)
		}
		if a.session.Finished() {
			return a.handleFinished(ctx, ev)
		}
		return a.handlePlaying(ctx, ev)
	}
	return true
}

func (a *App) handlePrompt(ctx context.Context, ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return ev.Key() != tcell.KeyEscape
	}
	preset, ok := mines.FindPreset(string(ev.Rune()))
	if !ok {
		return false
	}
	if err := a.startGame(ctx, preset); err != nil {
		a.err = err
		return false
	}
	return true
}

func (a *App) handlePlaying(ctx context.Context, ev *tcell.EventKey) bool {
	a.session.Touch()
	switch ev.Key() {
	case tcell.KeyUp:
		a.session.MoveCursor(-1, 0)
	case tcell.KeyDown:
		a.session.MoveCursor(1, 0)
	case tcell.KeyLeft:
		a.session.MoveCursor(0, -1)
	case tcell.KeyRight:
		a.session.MoveCursor(0, 1)
	}
	switch a.keys.action(ev) {
	case actionQuit:
		return false
	case actionFlag:
		if _, err := a.session.Flag(); err != nil {
			a.log.WithError(err).Warn("flag failed")
		}
	case actionOpen:
		if _, err := a.session.Open(); err != nil {
			a.log.WithError(err).Warn("open failed")
		}
	}
	a.refresh(ctx)
	return true
}

func (a *App) handleFinished(ctx context.Context, ev *tcell.EventKey) bool {
	if a.keys.action(ev) == actionNewGame {
		if err := a.startGame(ctx, a.session.Preset); err != nil {
			a.err = err
			return false
		}
		return true
	}
	return ev.Key() != tcell.KeyRune && ev.Key() != tcell.KeyEscape
}

func (a *App) startGame(ctx context.Context, preset mines.Preset) error {
	field, err := a.newField(preset.Params)
	if err != nil {
		return fmt.Errorf("new %s field: %w", preset.Name, err)
	}
	a.session = session.New(field, preset, session.WithClock(a.now), session.WithLogger(a.log))
	a.recorded = false
	a.log.WithFields(logrus.Fields{
		"preset": preset.Name,
		"width":  field.Width,
		"height": field.Height,
		"mines":  field.Mines,
	}).Info("game started")
	a.refresh(ctx)
	return nil
}

// refresh records a finished game once and reloads the session summary
// and the recent games.
func (a *App) refresh(ctx context.Context) {
	if a.session == nil {
		return
	}
	a.session.Update()
	if !a.session.Finished() || a.recorded {
		return
	}
	a.recorded = true
	if a.scores == nil {
		return
	}
	outcome := a.session.Outcome()
	result := stats.Result{
		Preset:      a.session.Preset.Name,
		Won:         outcome.Won,
		Duration:    outcome.Duration,
		CellsOpened: outcome.CellsOpened,
		FinishedAt:  a.now(),
	}
	if err := a.scores.Record(ctx, result); err != nil {
		a.log.WithError(err).Warn("failed to record game")
		return
	}
	summary, err := a.scores.Summary(ctx, result.Preset)
	if err != nil {
		a.log.WithError(err).Warn("failed to read summary")
		return
	}
	a.summary = summary
	recent, err := a.scores.Recent(ctx, recentGames)
	if err != nil {
		a.log.WithError(err).Warn("failed to read recent games")
		return
	}
	a.recent = recent
}

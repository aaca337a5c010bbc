package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/tomasstrnad1997/termines/config"
	"github.com/tomasstrnad1997/termines/config/env"
	"github.com/tomasstrnad1997/termines/console"
	"github.com/tomasstrnad1997/termines/logging"
	"github.com/tomasstrnad1997/termines/mines"
	"github.com/tomasstrnad1997/termines/stats"
	"github.com/tomasstrnad1997/termines/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	envFile := flag.String("env", ".env", "dotenv file to load")
	presetName := flag.String("preset", "", "difficulty: beginner, intermediate or expert (b/i/e)")
	seed := flag.Uint64("seed", 0, "random seed for mine placement, 0 picks one")
	keymapPath := flag.String("keymap", "", "YAML keymap and theme, overrides MINES_KEYMAP")
	flag.Parse()

	if err := config.Load(*envFile); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Error loading %s: %v", *envFile, err)
	}
	logCfg, err := env.NewLogConfig()
	if err != nil {
		return err
	}
	log, closer, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	uiCfg, err := env.NewUIConfig()
	if err != nil {
		return err
	}
	localeCfg, err := env.NewLocaleConfig()
	if err != nil {
		return err
	}
	gotext.Configure(localeCfg.Dir(), localeCfg.Lang(), "default")

	path := uiCfg.KeymapPath()
	if *keymapPath != "" {
		path = *keymapPath
	}
	keymap, err := config.LoadKeymap(path)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	var preset *mines.Preset
	if *presetName != "" {
		p, ok := mines.FindPreset(*presetName)
		if !ok {
			return fmt.Errorf("unknown preset %q", *presetName)
		}
		preset = &p
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", *seed).Info("starting")
	rng := mines.NewRand(*seed)
	newField := func(params mines.FieldParams) (*mines.Field, error) {
		return mines.NewField(params, rng, mines.WithLogger(log))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runConsole(ctx, preset, newField, log)
	}
	return runTerminal(ctx, preset, newField, keymap, uiCfg, log)
}

func runConsole(ctx context.Context, preset *mines.Preset, newField tui.FieldFactory, log *logrus.Logger) error {
	p := mines.Beginner
	if preset != nil {
		p = *preset
	}
	field, err := newField(p.Params)
	if err != nil {
		return err
	}
	state, err := console.Run(ctx, os.Stdin, os.Stdout, field, log)
	log.WithField("state", state.String()).Info("console game ended")
	return err
}

func runTerminal(ctx context.Context, preset *mines.Preset, newField tui.FieldFactory, keymap config.Keymap, uiCfg config.UIConfig, log *logrus.Logger) error {
	scores, err := stats.Open(ctx)
	if err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	defer scores.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := tui.New(screen, tui.Options{
		Tick:     uiCfg.TickInterval(),
		Keymap:   keymap,
		Scores:   scores,
		NewField: newField,
		Log:      log,
		Preset:   preset,
	})
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

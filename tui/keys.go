package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tomasstrnad1997/termines/config"
)

type action int

const (
	actionNone action = iota
	actionFlag
	actionOpen
	actionQuit
	actionNewGame
)

type binding struct {
	name string
	key  tcell.Key
	r    rune
}

func (b binding) matches(ev *tcell.EventKey) bool {
	if b.key != tcell.KeyRune {
		return ev.Key() == b.key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == b.r
}

type keyBindings struct {
	flag    binding
	open    binding
	quit    binding
	newGame binding
}

func parseBinding(name string) (binding, error) {
	switch name {
	case config.KeyEnter:
		return binding{name: "Enter", key: tcell.KeyEnter}, nil
	case config.KeySpace:
		return binding{name: "Space", key: tcell.KeyRune, r: ' '}, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return binding{}, fmt.Errorf("key %q is not a single character", name)
	}
	return binding{name: name, key: tcell.KeyRune, r: runes[0]}, nil
}

func newKeyBindings(keys config.Keys) (keyBindings, error) {
	defaults := config.DefaultKeymap().Keys
	var kb keyBindings
	for _, k := range []struct {
		dst   *binding
		value string
		def   string
	}{
		{&kb.flag, keys.Flag, defaults.Flag},
		{&kb.open, keys.Open, defaults.Open},
		{&kb.quit, keys.Quit, defaults.Quit},
		{&kb.newGame, keys.NewGame, defaults.NewGame},
	} {
		value := k.value
		if value == "" {
			value = k.def
		}
		b, err := parseBinding(value)
		if err != nil {
			return keyBindings{}, err
		}
		*k.dst = b
	}
	return kb, nil
}

func (kb keyBindings) action(ev *tcell.EventKey) action {
	switch {
	case kb.quit.matches(ev):
		return actionQuit
	case kb.flag.matches(ev):
		return actionFlag
	case kb.open.matches(ev):
		return actionOpen
	case kb.newGame.matches(ev):
		return actionNewGame
	}
	return actionNone
}

package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tomasstrnad1997/termines/config"
)

const (
	tickName   = "MINES_TICK_MS"
	keymapName = "MINES_KEYMAP"

	defaultTick = 200 * time.Millisecond
)

type uiConfig struct {
	tick   time.Duration
	keymap string
}

func NewUIConfig() (config.UIConfig, error) {
	tick := defaultTick
	if raw := os.Getenv(tickName); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid %s %q", tickName, raw)
		}
		tick = time.Duration(ms) * time.Millisecond
	}
	return &uiConfig{
		tick:   tick,
		keymap: os.Getenv(keymapName),
	}, nil
}

func (cfg *uiConfig) TickInterval() time.Duration {
	return cfg.tick
}

func (cfg *uiConfig) KeymapPath() string {
	return cfg.keymap
}

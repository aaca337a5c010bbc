package env

import (
	"os"

	"github.com/tomasstrnad1997/termines/config"
)

const (
	logLevelName = "MINES_LOG_LEVEL"
	logFileName  = "MINES_LOG_FILE"
)

type logConfig struct {
	level string
	file  string
}

func NewLogConfig() (config.LogConfig, error) {
	level := os.Getenv(logLevelName)
	if level == "" {
		level = "info"
	}
	return &logConfig{
		level: level,
		file:  os.Getenv(logFileName),
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

// File is empty when logs should be discarded.
func (cfg *logConfig) File() string {
	return cfg.file
}

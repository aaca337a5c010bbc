package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type UIConfig interface {
	TickInterval() time.Duration
	KeymapPath() string
}

type LogConfig interface {
	Level() string
	File() string
}

type LocaleConfig interface {
	Dir() string
	Lang() string
}

package env

import (
	"os"

	"github.com/tomasstrnad1997/termines/config"
)

const (
	localeDirName = "MINES_LOCALE_DIR"
	langName      = "MINES_LANG"
)

type localeConfig struct {
	dir  string
	lang string
}

func NewLocaleConfig() (config.LocaleConfig, error) {
	dir := os.Getenv(localeDirName)
	if dir == "" {
		dir = "locales"
	}
	lang := os.Getenv(langName)
	if lang == "" {
		lang = "en_US"
	}
	return &localeConfig{dir: dir, lang: lang}, nil
}

func (cfg *localeConfig) Dir() string {
	return cfg.dir
}

func (cfg *localeConfig) Lang() string {
	return cfg.lang
}

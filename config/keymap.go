package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Key names accepted besides single characters.
const (
	KeyEnter = "enter"
	KeySpace = "space"
)

type Keys struct {
	Flag    string `yaml:"flag"`
	Open    string `yaml:"open"`
	Quit    string `yaml:"quit"`
	NewGame string `yaml:"new_game"`
}

type Theme struct {
	Cell    string         `yaml:"cell"`
	Cursor  string         `yaml:"cursor"`
	Text    string         `yaml:"text"`
	Numbers map[int]string `yaml:"numbers"`
}

type Keymap struct {
	Keys  Keys  `yaml:"keys"`
	Theme Theme `yaml:"theme"`
}

func DefaultKeymap() Keymap {
	return Keymap{
		Keys: Keys{
			Flag:    "f",
			Open:    KeyEnter,
			Quit:    "q",
			NewGame: "n",
		},
		Theme: Theme{
			Cell:   "gray",
			Cursor: "blue",
			Text:   "black",
			Numbers: map[int]string{
				1: "#0200fd",
				2: "#017e00",
				3: "#fe0001",
				4: "#010180",
				5: "#7f0300",
				6: "#008080",
				7: "#000000",
				8: "#808080",
			},
		},
	}
}

// LoadKeymap reads a YAML keymap. Missing entries keep their defaults and an
// empty path returns the defaults.
func LoadKeymap(path string) (Keymap, error) {
	keymap := DefaultKeymap()
	if path == "" {
		return keymap, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return keymap, err
	}
	return ParseKeymap(data)
}

func ParseKeymap(data []byte) (Keymap, error) {
	keymap := DefaultKeymap()
	var parsed Keymap
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return keymap, fmt.Errorf("parse keymap: %w", err)
	}
	merge(&keymap.Keys.Flag, parsed.Keys.Flag)
	merge(&keymap.Keys.Open, parsed.Keys.Open)
	merge(&keymap.Keys.Quit, parsed.Keys.Quit)
	merge(&keymap.Keys.NewGame, parsed.Keys.NewGame)
	merge(&keymap.Theme.Cell, parsed.Theme.Cell)
	merge(&keymap.Theme.Cursor, parsed.Theme.Cursor)
	merge(&keymap.Theme.Text, parsed.Theme.Text)
	for n, color := range parsed.Theme.Numbers {
		if n < 1 || n > 8 {
			return keymap, fmt.Errorf("theme: no number %d", n)
		}
		keymap.Theme.Numbers[n] = color
	}
	return keymap, keymap.Keys.validate()
}

func merge(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func (k Keys) validate() error {
	seen := make(map[string]string)
	for name, key := range map[string]string{"flag": k.Flag, "open": k.Open, "quit": k.Quit, "new_game": k.NewGame} {
		if key != KeyEnter && key != KeySpace && utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("keymap: %s key %q is not a single character", name, key)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("keymap: %s and %s share key %q", name, other, key)
		}
		seen[key] = name
	}
	return nil
}

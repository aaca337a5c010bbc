package mines

import "strings"

type FieldParams struct {
	Width    int
	Height   int
	Mines    int
	StartRow int
	StartCol int
}

type Preset struct {
	Name   string
	Key    rune
	Params FieldParams
}

var (
	Beginner     = Preset{"Beginner", 'B', FieldParams{Width: 9, Height: 9, Mines: 10, StartRow: 5, StartCol: 5}}
	Intermediate = Preset{"Intermediate", 'I', FieldParams{Width: 16, Height: 16, Mines: 40, StartRow: 5, StartCol: 5}}
	Expert       = Preset{"Expert", 'E', FieldParams{Width: 30, Height: 16, Mines: 99, StartRow: 5, StartCol: 5}}
)

var Presets = []Preset{Beginner, Intermediate, Expert}

// FindPreset matches either the preset key ("b") or its full name ("beginner").
func FindPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Presets {
		if strings.EqualFold(name, p.Name) || strings.EqualFold(name, string(p.Key)) {
			return p, true
		}
	}
	return Preset{}, false
}

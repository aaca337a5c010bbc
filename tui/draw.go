package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"github.com/tomasstrnad1997/termines/config"
	"github.com/tomasstrnad1997/termines/mines"
	"github.com/tomasstrnad1997/termines/session"
	"github.com/tomasstrnad1997/termines/stats"
)

const cellWidth = 3

type styles struct {
	frame   tcell.Style
	cell    tcell.Style
	cursor  tcell.Style
	numbers map[int]tcell.Color
}

func newStyles(theme config.Theme) styles {
	defaults := config.DefaultKeymap().Theme
	color := func(name, fallback string) tcell.Color {
		if name == "" {
			name = fallback
		}
		return tcell.GetColor(name)
	}
	text := color(theme.Text, defaults.Text)
	s := styles{
		frame:   tcell.StyleDefault,
		cell:    tcell.StyleDefault.Background(color(theme.Cell, defaults.Cell)).Foreground(text),
		cursor:  tcell.StyleDefault.Background(color(theme.Cursor, defaults.Cursor)).Foreground(text),
		numbers: make(map[int]tcell.Color),
	}
	for n, name := range defaults.Numbers {
		s.numbers[n] = color(theme.Numbers[n], name)
	}
	return s
}

// FormatElapsed renders a duration as HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	hours := secs / 3600
	secs %= 3600
	minutes := secs / 60
	secs %= 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

func (a *App) Draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	a.drawFrame(width, height)
	if a.session == nil {
		a.drawPrompt(width, height)
	} else {
		a.drawGame(width)
	}
	a.screen.Show()
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) drawCentered(y, width int, style tcell.Style, text string) {
	x := (width - len([]rune(text))) / 2
	a.drawText(max(x, 0), y, style, text)
}

func (a *App) drawFrame(width, height int) {
	if width < 2 || height < 2 {
		return
	}
	for x := 1; x < width-1; x++ {
		a.screen.SetContent(x, 0, tcell.RuneHLine, nil, a.styles.frame)
		a.screen.SetContent(x, height-1, tcell.RuneHLine, nil, a.styles.frame)
	}
	for y := 1; y < height-1; y++ {
		a.screen.SetContent(0, y, tcell.RuneVLine, nil, a.styles.frame)
		a.screen.SetContent(width-1, y, tcell.RuneVLine, nil, a.styles.frame)
	}
	a.screen.SetContent(0, 0, tcell.RuneULCorner, nil, a.styles.frame)
	a.screen.SetContent(width-1, 0, tcell.RuneURCorner, nil, a.styles.frame)
	a.screen.SetContent(0, height-1, tcell.RuneLLCorner, nil, a.styles.frame)
	a.screen.SetContent(width-1, height-1, tcell.RuneLRCorner, nil, a.styles.frame)
}

func (a *App) drawPrompt(width, height int) {
	lines := []string{gotext.Get("Which mode would you like to play?"), ""}
	for _, p := range mines.Presets {
		lines = append(lines, gotext.Get("%c - %s (%dx%d, %d mines)", p.Key, gotext.Get(p.Name), p.Params.Width, p.Params.Height, p.Params.Mines))
	}
	lines = append(lines, "", gotext.Get("any other key - exit"))
	top := max((height-len(lines))/2, 1)
	for i, line := range lines {
		a.drawCentered(top+i, width, a.styles.frame, line)
	}
}

func (a *App) face() string {
	switch a.session.State() {
	case session.Won:
		return "B)"
	case session.Lost:
		return ":("
	default:
		return ":)"
	}
}

func (a *App) drawGame(width int) {
	s := a.session
	field := s.Field
	status := fmt.Sprintf("%s  %s  %s",
		gotext.Get("Flags left: %d", field.FlagsRemaining()),
		a.face(),
		gotext.Get("Closed cells left: %d", field.ClosedRemaining()))
	a.drawCentered(1, width, a.styles.frame, status)
	a.drawCentered(2, width, a.styles.frame, FormatElapsed(s.Elapsed()))

	top := 4
	left := max((width-field.Width*cellWidth)/2, 1)
	field.Cells(func(row, col int, cell mines.Cell) {
		style := a.styles.cell
		if row == s.Row && col == s.Col {
			style = a.styles.cursor
		}
		mark, markStyle := a.cellMark(cell, style)
		x := left + col*cellWidth
		a.screen.SetContent(x, top+row, '[', nil, style)
		a.screen.SetContent(x+1, top+row, mark, nil, markStyle)
		a.screen.SetContent(x+2, top+row, ']', nil, style)
	})

	y := top + field.Height + 1
	for _, line := range a.helpLines() {
		a.drawCentered(y, width, a.styles.frame, line)
		y++
	}
	if s.Finished() {
		y++
		for _, line := range a.endLines() {
			a.drawCentered(y, width, a.styles.frame, line)
			y++
		}
	}
}

func (a *App) cellMark(cell mines.Cell, style tcell.Style) (rune, tcell.Style) {
	content, number, ok := cell.VisibleContent()
	if !ok {
		if cell.Visibility == mines.Flagged {
			return 'F', style
		}
		return '#', style
	}
	switch content {
	case mines.Mine:
		return '*', style
	case mines.Number:
		return rune('0' + number), style.Foreground(a.styles.numbers[number])
	default:
		return '.', style
	}
}

func (a *App) helpLines() []string {
	return []string{
		gotext.Get("%s - flag", a.keys.flag.name),
		gotext.Get("%s - open cell", a.keys.open.name),
		gotext.Get("Up/Down/Left/Right - navigation"),
		gotext.Get("%s - exit", a.keys.quit.name),
	}
}

func (a *App) endLines() []string {
	var lines []string
	if a.session.State() == session.Won {
		lines = append(lines, gotext.Get("You won in %s!", FormatElapsed(a.session.Elapsed())))
	} else {
		lines = append(lines, gotext.Get("Boom! You hit a mine."))
	}
	if a.summary.Played > 0 {
		summary := gotext.Get("%s this session: %d played, %d won", gotext.Get(a.session.Preset.Name), a.summary.Played, a.summary.Won)
		if a.summary.HasBest {
			summary += ", " + gotext.Get("best %s", FormatElapsed(a.summary.Best))
		}
		lines = append(lines, summary)
	}
	if len(a.recent) > 0 {
		lines = append(lines, gotext.Get("Last games:"))
		for _, r := range a.recent {
			lines = append(lines, recentLine(r))
		}
	}
	lines = append(lines, gotext.Get("%s - new game, any other key - exit", strings.ToLower(a.keys.newGame.name)))
	return lines
}

func recentLine(r stats.Result) string {
	if r.Won {
		return gotext.Get("%s: won in %s", gotext.Get(r.Preset), FormatElapsed(r.Duration))
	}
	return gotext.Get("%s: lost after %s, %d cells opened", gotext.Get(r.Preset), FormatElapsed(r.Duration), r.CellsOpened)
}

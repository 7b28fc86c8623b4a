package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mesoquest/assets"
	"mesoquest/internal/game"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(s game.Snapshot) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	p := s.Player
	status := r.printer.Sprintf("LV %d  HP %d/%d  EXP %d/%d  DMG %d  Mesos %d  Mobs %d",
		p.Level, p.HP, p.MaxHP, int(p.Exp), p.ExpToNext, p.Damage, s.Wallet, len(s.Mobs))
	if p.StatPoints > 0 {
		status += r.printer.Sprintf("  SP %d", p.StatPoints)
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := max(len(s.Messages)-3, 0)
	for i, msg := range s.Messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(assets.ColorMessage))
	}
}

// drawQuest renders the quest panel and asset diagnostics above the
// playfield.
func (r *Renderer) drawQuest(s game.Snapshot) {
	r.drawText(0, 0, s.Quest.Heading(), tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true))
	if !s.Quest.Done {
		r.drawText(0, 1, strings.Join(s.Quest.Lines, " | "), tcell.StyleDefault.Foreground(tcell.ColorLightGreen))
	} else {
		r.drawText(0, 1, s.Quest.Description, tcell.StyleDefault.Foreground(tcell.ColorLightGreen))
	}
	if len(s.Diagnostics) > 0 {
		w, _ := r.screen.Size()
		msg := s.Diagnostics[len(s.Diagnostics)-1]
		r.drawText(w-runewidth.StringWidth(msg), 1, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	r.drawHLine(TopRows-1, tcell.ColorGray)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText draws text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

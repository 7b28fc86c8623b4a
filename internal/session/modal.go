package session

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var helpLines = []string{
	"── Movement ──────────────────────────",
	"  Left / Right        Walk",
	"  Up                  Jump",
	"",
	"── Actions ───────────────────────────",
	"  Space / z           Attack",
	"  i                   Inventory",
	"  c / k               Stats",
	"  s / v               Spend SP on STR / VIT",
	"  e                   Shop (next to the shopkeeper)",
	"  Tab / 1-6 / Esc     Shop tabs / buy / close",
	"",
	"── Game ──────────────────────────────",
	"  q                   Quit",
	"  ?                   This help",
	"",
	"  [any key to close]",
}

// drawModal draws a centred bordered box with a header and body lines.
func drawModal(screen tcell.Screen, header string, lines []string, bodyStyle tcell.Style) {
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	width := runewidth.StringWidth(header) + 4
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l)+4)
	}
	boxH := len(lines) + 2

	screen.Clear()
	sw, sh := screen.Size()
	x0 := (sw - width) / 2
	y0 := (sh - boxH) / 2

	for col := x0; col < x0+width; col++ {
		screen.SetContent(col, y0, '─', nil, borderStyle)
		screen.SetContent(col, y0+boxH-1, '─', nil, borderStyle)
	}
	for row := y0; row < y0+boxH; row++ {
		screen.SetContent(x0, row, '│', nil, borderStyle)
		screen.SetContent(x0+width-1, row, '│', nil, borderStyle)
	}
	screen.SetContent(x0, y0, '┌', nil, borderStyle)
	screen.SetContent(x0+width-1, y0, '┐', nil, borderStyle)
	screen.SetContent(x0, y0+boxH-1, '└', nil, borderStyle)
	screen.SetContent(x0+width-1, y0+boxH-1, '┘', nil, borderStyle)

	hx := x0 + (width-runewidth.StringWidth(header))/2
	for _, r := range header {
		screen.SetContent(hx, y0, r, nil, hdrStyle)
		hx += runewidth.RuneWidth(r)
	}
	for i, line := range lines {
		x := x0 + 2
		for _, r := range line {
			screen.SetContent(x, y0+1+i, r, nil, bodyStyle)
			x += runewidth.RuneWidth(r)
		}
	}
	screen.Show()
}

// runHelp shows the key reference. Any key dismisses it; the simulation
// is paused meanwhile.
func (s *Session) runHelp(eventCh <-chan tcell.Event) {
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for {
		drawModal(s.Screen, " Controls ", helpLines, body)
		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}

// confirmQuit shows a "Really quit? (y/n)" prompt. Returns true if
// confirmed or the screen closed.
func (s *Session) confirmQuit(eventCh <-chan tcell.Event) bool {
	body := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for {
		drawModal(s.Screen, "", []string{"Really quit? (y/n)"}, body)
		ev, ok := <-eventCh
		if !ok {
			return true
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}

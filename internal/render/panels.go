package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mesoquest/assets"
	"mesoquest/internal/game"
)

// drawPanels renders whichever overlay windows are open.
func (r *Renderer) drawPanels(s game.Snapshot) {
	col := 1
	if s.Inventory {
		col += r.drawBox(col, TopRows, "INVENTORY", r.inventoryLines(s)) + 1
	}
	if s.Stats {
		col += r.drawBox(col, TopRows, "STATS", r.statsLines(s)) + 1
	}
	if s.Shop.Open {
		r.drawBox(col, TopRows, "SHOP", r.shopLines(s))
	}
}

func (r *Renderer) inventoryLines(s game.Snapshot) []string {
	lines := []string{r.printer.Sprintf("Mesos: %d", s.Wallet)}
	for _, p := range assets.Potions {
		if n := s.Owned[p.ID]; n > 0 {
			lines = append(lines, fmt.Sprintf("%s x%d", p.Name, n))
		}
	}
	return lines
}

func (r *Renderer) statsLines(s game.Snapshot) []string {
	p := s.Player
	return []string{
		fmt.Sprintf("LV: %d", p.Level),
		fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("DMG: %d", p.Damage),
		r.printer.Sprintf("EXP: %d/%d", int(p.Exp), p.ExpToNext),
		fmt.Sprintf("SP: %d", p.StatPoints),
		fmt.Sprintf("STR: %d | VIT: %d", p.STR, p.VIT),
		"[S] +STR  [V] +VIT",
	}
}

func (r *Renderer) shopLines(s game.Snapshot) []string {
	var tabs string
	for i, name := range assets.ShopTabs {
		if i+1 == s.Shop.Tab {
			tabs += "[" + name + "]"
		} else {
			tabs += " " + name + " "
		}
	}
	lines := []string{tabs, ""}
	if s.Shop.Tab != assets.PotionTab {
		return append(lines, "Nothing for sale here.")
	}
	for i, p := range assets.Potions {
		lines = append(lines, r.printer.Sprintf("%d) %-16s +%d %s  %d mesos", i+1, p.Name, p.Heal, p.Kind, p.Price))
	}
	return append(lines, "", "Esc closes, Tab switches tabs")
}

// drawBox draws a bordered window with a title at (x, y) and returns its
// width.
func (r *Renderer) drawBox(x, y int, title string, lines []string) int {
	inner := runewidth.StringWidth(title) + 2
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	border := tcell.StyleDefault.Foreground(assets.ColorPanel)
	body := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	w := inner + 2
	h := len(lines) + 2
	for cx := x; cx < x+w; cx++ {
		r.screen.SetContent(cx, y, '─', nil, border)
		r.screen.SetContent(cx, y+h-1, '─', nil, border)
	}
	for cy := y; cy < y+h; cy++ {
		r.screen.SetContent(x, cy, '│', nil, border)
		r.screen.SetContent(x+w-1, cy, '│', nil, border)
	}
	r.screen.SetContent(x, y, '┌', nil, border)
	r.screen.SetContent(x+w-1, y, '┐', nil, border)
	r.screen.SetContent(x, y+h-1, '└', nil, border)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, border)
	r.drawText(x+2, y, title, border.Bold(true))

	for i, l := range lines {
		row := y + 1 + i
		for cx := x + 1; cx < x+w-1; cx++ {
			r.screen.SetContent(cx, row, ' ', nil, body)
		}
		r.drawText(x+1, row, l, body)
	}
	return w
}

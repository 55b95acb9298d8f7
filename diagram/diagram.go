package diagram

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tonica/fret"
)

// chartFrets is how many fret columns a fretboard chart shows past the
// chart's base position.
const chartFrets = 5

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	gridStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	slotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Fretboard renders a chart for one fingering: one row per string,
// high string on top, a dot on the fretted position, "o" for open and
// "x" for muted strings. The label is typically the chord's symbol.
func Fretboard(label string, f fret.Fingering, t fret.Tuning) string {
	base := f.Position()
	if base > 0 {
		base-- // show one fret of context before the first dot
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	if base > 0 {
		b.WriteString(gridStyle.Render(fmt.Sprintf("  (fret %d)", base+1)))
	}
	b.WriteString("\n")

	for s := len(f.Frets) - 1; s >= 0; s-- {
		fr := f.Frets[s]
		name := "?"
		if s < len(t) {
			name = t[s].Class().String()
		}
		b.WriteString(gridStyle.Render(fmt.Sprintf("%-3s", name)))
		switch {
		case fr == fret.Muted:
			b.WriteString(mutedStyle.Render("x"))
		case fr == 0:
			b.WriteString(dotStyle.Render("o"))
		default:
			b.WriteString(gridStyle.Render("|"))
		}
		for col := base + 1; col <= base+chartFrets; col++ {
			if fr == col {
				b.WriteString(gridStyle.Render("--") + dotStyle.Render("●") + gridStyle.Render("-|"))
			} else {
				b.WriteString(gridStyle.Render("----|"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// IntervalStrip renders the 12 interval-class slots with the chord's
// sounding classes filled in: "●" on a sounding class, "·" elsewhere.
// Classes are reduced into [0,12), honoring the renderer contract.
func IntervalStrip(label string, classes []int) string {
	slots := make([]bool, 12)
	for _, cls := range classes {
		slots[((cls%12)+12)%12] = true
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	b.WriteString("  ")
	for i, on := range slots {
		if on {
			b.WriteString(slotStyle.Render("●"))
		} else {
			b.WriteString(mutedStyle.Render("·"))
		}
		if i < 11 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	indent := strings.Repeat(" ", lipgloss.Width(labelStyle.Render(label))+2)
	b.WriteString(indent)
	// pc-set convention: t and e stand in for 10 and 11.
	b.WriteString(gridStyle.Render("0 1 2 3 4 5 6 7 8 9 t e"))
	return b.String()
}

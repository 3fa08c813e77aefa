package band

import (
	"fmt"
	"strings"

	drawille "github.com/exrook/drawille-go"
)

const (
	dotsPerCharX = 2
	dotsPerCharY = 4
)

// StepsChart draws one braille bar per day, scaled to the busiest day.
// height is in terminal rows. Returns "" when there is nothing to plot.
func StepsChart(days []DaySummary, height int, theme Theme) string {
	if len(days) == 0 || height <= 0 {
		return ""
	}

	var peak int
	totals := make([]int, len(days))
	for i, d := range days {
		if steps := d.Steps(); steps != nil {
			totals[i] = steps.Total
			peak = max(peak, steps.Total)
		}
	}
	if peak == 0 {
		return ""
	}

	dotsHigh := height * dotsPerCharY
	canvas := drawille.NewCanvas()
	for x, total := range totals {
		if total <= 0 {
			continue
		}
		bar := max(total*dotsHigh/peak, 1)
		for y := dotsHigh - 1; y >= dotsHigh-bar; y-- {
			canvas.Set(x, y)
		}
	}

	dotsWide := len(days) + len(days)%dotsPerCharX
	charsWide := dotsWide / dotsPerCharX
	rows := canvas.Rows(0, 0, dotsWide, dotsHigh)

	var b strings.Builder
	for i := range height {
		line := ""
		if i < len(rows) {
			line = rows[i]
		}
		runes := []rune(line)
		switch n := len(runes); {
		case n < charsWide:
			line += strings.Repeat(" ", charsWide-n)
		case n > charsWide:
			line = string(runes[:charsWide])
		}
		b.WriteString(theme.Steps(line))
		b.WriteByte('\n')
	}
	b.WriteString(theme.Dim(fmt.Sprintf("%s .. %s, peak %d steps", days[0].Date, days[len(days)-1].Date, peak)))
	return b.String()
}

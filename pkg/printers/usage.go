package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

const meterWidth = 20

// Usage prints how much of a limit is used as a bar.
func (pp *PrettyPrint) Usage(rows ...UsageRow) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow(color.New(color.Bold).Sprint(r.Name), Meter(r.Used, r.Max), fmt.Sprintf("%d / %d", r.Used, r.Max))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// UsageRow is one line of Usage.
type UsageRow struct {
	Name string
	Used int
	Max  int
}

// Meter draws used/max as a fixed width bar. It turns red past 90%.
func Meter(used, max int) string {
	if max <= 0 {
		return strings.Repeat("-", meterWidth)
	}
	filled := used * meterWidth / max
	if filled > meterWidth {
		filled = meterWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", meterWidth-filled)
	if used*10 > max*9 {
		return color.New(color.FgRed).Sprint(bar)
	}
	return color.New(color.FgGreen).Sprint(bar)
}

package reportfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tessera/internal/colorize"
	"tessera/internal/eval"
)

var (
	acceptBanner = color.New(color.FgGreen, color.Bold)
	rejectBanner = color.New(color.FgRed, color.Bold)
)

// Pretty writes a human-readable report.
func Pretty(w io.Writer, rep eval.Report, opts PrettyOpts) error {
	verdict := "REJECT"
	banner := rejectBanner
	if rep.Accepted {
		verdict = "ACCEPT"
		banner = acceptBanner
	}
	if opts.Color {
		fmt.Fprintf(w, "%s: %s\n", banner.Sprint(verdict), rep.Reason)
	} else {
		fmt.Fprintf(w, "%s: %s\n", verdict, rep.Reason)
	}

	fmt.Fprintf(w, "state: %d digit(s), %d token(s)", len(rep.DecimalText), len(rep.Tokens))
	if rep.GridSide > 0 {
		fmt.Fprintf(w, ", grid %dx%d", rep.GridSide, rep.GridSide)
	}
	fmt.Fprintln(w)

	for _, c := range rep.Checks {
		mark := "ok"
		if !c.OK {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "  %-10s %s\n", c.Kind.String(), mark)
	}

	if len(rep.RangeFailures) > 0 {
		fmt.Fprintln(w, "range failures:")
		for _, f := range rep.RangeFailures {
			fmt.Fprintf(w, "  token %d = %d\n", f.Index, f.Value)
		}
	}
	if len(rep.ConflictCells) > 0 {
		cells := make([]string, len(rep.ConflictCells))
		for i, c := range rep.ConflictCells {
			cells[i] = fmt.Sprintf("%d", c)
		}
		fmt.Fprintf(w, "conflict cells: %s\n", strings.Join(cells, ", "))
	}

	if opts.ShowTokens {
		writeTokenTable(w, rep, opts.MaxTokens)
	}
	if opts.ShowGrid && rep.GridSide > 0 {
		fmt.Fprintln(w)
		writeGrid(w, rep, opts.Color)
	}
	if opts.ShowTimings {
		fmt.Fprintf(w, "\ntotal: %.2f ms\n", rep.Timings.TotalMS)
	}
	return nil
}

func writeTokenTable(w io.Writer, rep eval.Report, maxTokens int) {
	conflict := make(map[int]bool, len(rep.ConflictCells))
	for _, c := range rep.ConflictCells {
		conflict[c] = true
	}
	n := len(rep.Tokens)
	if maxTokens > 0 && n > maxTokens {
		n = maxTokens
	}
	for i := 0; i < n; i++ {
		window := ""
		if i < len(rep.Windows) {
			window = rep.Windows[i]
		}
		line := fmt.Sprintf("%4d: %s %10d  #%s", i, runewidth.FillRight(window, 7), rep.Tokens[i], rep.Colors[i])
		if conflict[i] {
			line += "  <- conflict"
		}
		fmt.Fprintln(w, line)
	}
	if n < len(rep.Tokens) {
		fmt.Fprintf(w, "  ... %d more token(s)\n", len(rep.Tokens)-n)
	}
}

// writeGrid renders the token grid as colored tiles, or as hex text when
// color output is off.
func writeGrid(w io.Writer, rep eval.Report, useColor bool) {
	m := rep.GridSide
	for r := 0; r < m; r++ {
		var row strings.Builder
		for c := 0; c < m; c++ {
			hex := rep.Colors[r*m+c]
			if !useColor || hex == colorize.Sentinel {
				row.WriteString(hex)
				row.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color("#" + hex))
			row.WriteString(style.Render("  "))
		}
		fmt.Fprintln(w, row.String())
	}
}

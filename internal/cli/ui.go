package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/knapsack/pkg/knapsack"
	"github.com/matzehuels/knapsack/pkg/solver"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleSelected = lipgloss.NewStyle().Foreground(colorGreen)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Search Output
// =============================================================================

// printStats prints the search counters on a single line.
func printStats(w io.Writer, st knapsack.Stats, cached bool) {
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	sep := StyleDim.Render(" · ")
	fmt.Fprintln(w, "  "+
		StyleDim.Render(fmt.Sprintf("%d explored", st.Explored))+sep+
		StyleDim.Render(fmt.Sprintf("%d pruned", st.Pruned))+sep+
		StyleDim.Render(fmt.Sprintf("%d infeasible", st.Infeasible))+sep+
		StyleDim.Render(fmt.Sprintf("%d leaves", st.Leaves))+sep+
		statusStyle.Render(status))
}

// itemsTable renders the density-sorted items, highlighting the selection.
func itemsTable(sorted []knapsack.Item, path []int) string {
	selected := make(map[int]bool, len(path))
	for _, i := range path {
		selected[i] = true
	}

	rows := make([][]string, len(sorted))
	for i, it := range sorted {
		mark := ""
		if selected[i] {
			mark = iconSuccess
		}
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.Itoa(it.Value),
			strconv.Itoa(it.Weight),
			formatDensity(it),
			mark,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Value", "Weight", "Density", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row >= 0 && row < len(sorted) && selected[row] {
				return styleCell.Inherit(styleSelected)
			}
			return styleCell.Foreground(colorDim)
		})
	return t.Render()
}

// sweepTable renders one row per capacity.
func sweepTable(points solver.SweepPoints) string {
	rows := make([][]string, len(points))
	for i, p := range points {
		value, weight, count := "-", "-", "-"
		if p.Found {
			value = strconv.Itoa(p.Solution.Value)
			weight = strconv.Itoa(p.Solution.Weight)
			count = strconv.Itoa(len(p.Solution.Path))
		}
		rows[i] = []string{strconv.Itoa(p.Capacity), value, weight, count, strconv.Itoa(p.Stats.Explored)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Capacity", "Value", "Weight", "Items", "Explored").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 1 {
				return styleCell.Foreground(colorCyan)
			}
			return styleCell
		})
	return t.Render()
}

func formatDensity(it knapsack.Item) string {
	if it.Weight == 0 && it.Value > 0 {
		return "∞"
	}
	return strconv.FormatFloat(it.Density(), 'f', 2, 64)
}

func formatPath(path []int) string {
	return fmt.Sprint(path)
}

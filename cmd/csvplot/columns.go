package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/EntangledQuantum/CSV-Viewer/src/axis"
	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	numericStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	opaqueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tableStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func newColumnsCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "columns FILE",
		Short: "List the columns of FILE with their inferred type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := rf.loadTable(args[0])
			if err != nil {
				return err
			}
			writeColumnReport(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func classStyle(c table.Classification) lipgloss.Style {
	switch c {
	case table.Numeric:
		return numericStyle
	case table.DatetimeLike:
		return dateStyle
	default:
		return opaqueStyle
	}
}

// writeColumnReport prints one row per column: position, name, type and
// whether the name matches the time vocabulary.
func writeColumnReport(w io.Writer, tbl *table.Table) {
	names := tbl.Columns()
	classes := tbl.Classifications()

	header := []string{"#", "column", "type", "time name"}
	rows := make([][]string, len(names))
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for i, name := range names {
		hint := "-"
		if axis.LooksLikeTime(name) {
			hint = "yes"
		}
		rows[i] = []string{strconv.Itoa(i + 1), name, classes[i].String(), hint}
		for j, v := range rows[i] {
			if n := lipgloss.Width(v); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	for j, h := range header {
		b.WriteString(cellStyle.Render(headerStyle.Width(widths[j]).Render(h)))
	}
	for i, row := range rows {
		b.WriteString("\n")
		for j, v := range row {
			st := lipgloss.NewStyle()
			if j == 2 {
				st = classStyle(classes[i])
			}
			b.WriteString(cellStyle.Render(st.Width(widths[j]).Render(v)))
		}
	}

	title := fmt.Sprintf("%s: %d rows, %d columns", tbl.Source(), tbl.NumRows(), tbl.NumColumns())
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, tableStyle.Render(b.String()))
}

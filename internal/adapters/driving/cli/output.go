package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

const timeFormat = "2006-01-02 15:04:05"

var (
	accentColour = lipgloss.Color("#7C3AED")
	mutedColour  = lipgloss.Color("#6C7086")
	borderColour = lipgloss.Color("#45475A")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColour).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColour)
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printWords prints ranked words. Terminals get a bordered table; pipes get
// tab-separated lines without a header.
func printWords(cmd *cobra.Command, words []domain.WordStatistic) {
	if len(words) == 0 {
		cmd.Println("No words survived tokenization.")
		return
	}

	rows := make([][]string, len(words))
	for i := range words {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			words[i].Word,
			fmt.Sprintf("%g", words[i].TF),
			fmt.Sprintf("%.6f", words[i].IDF),
			fmt.Sprintf("%.6f", words[i].TFIDF),
		}
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		for _, row := range rows {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[1], row[2], row[3], row[4])
		}
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColour)).
		Headers("#", "WORD", "TF", "IDF", "TF-IDF").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return cellStyle
			default:
				return numberStyle
			}
		})
	fmt.Fprintln(out, t.Render())
}

// muted renders secondary text, styled only on terminals.
func muted(cmd *cobra.Command, text string) string {
	if !isTerminal(cmd.OutOrStdout()) {
		return text
	}
	return mutedStyle.Render(text)
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/factrunner/factrunner/internal/content"
)

var citationsCmd = &cobra.Command{
	Use:   "citations",
	Short: "Print the works cited",
	Long: `Print every fact with its source, the asset credits and the donation link.

Examples:
  factrunner citations
  factrunner citations --content ./facts.yaml`,
	Args: cobra.NoArgs,
	RunE: runCitations,
}

func init() {
	citationsCmd.Flags().StringVar(&flagContent, "content", "", "Path to custom facts and citations YAML")
}

var (
	citedLabelStyle  = lipgloss.NewStyle().Bold(true)
	citedSourceStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

func runCitations(cmd *cobra.Command, args []string) error {
	ds, err := content.Load(flagContent)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "WORKS CITED")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "FUN FACTS")
	fmt.Fprintln(out)

	for _, line := range ds.WorksCited() {
		fmt.Fprintf(out, "%s: %s\n", citedLabelStyle.Render(line.Label), line.Text)
		if line.Source != "" {
			fmt.Fprintf(out, "  %s\n", citedSourceStyle.Render("Source: "+line.Source))
		}
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/seedpacket/pkg/layout"
)

// Layout output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// layoutCommand creates the layout command for inspecting the template geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the packet template geometry",
		Long: `Print the packet template geometry: every outline with its stroke style,
the text anchors and the image and notes rectangles. Coordinates are in PDF
points with the origin at the top-left of the page.

The table format is meant for reading; json and yaml export the full
structure, including every path segment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := writeLayout(w, layout.Compute(), format); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Layout written")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeLayout writes g to w in the given format.
func writeLayout(w io.Writer, g layout.Geometry, format string) error {
	switch format {
	case formatTable:
		_, err := io.WriteString(w, layoutTable(g)+"\n")
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format: %s (must be 'table', 'json', or 'yaml')", format)
	}
}

// layoutTable renders the outlines and content placements as two tables.
func layoutTable(g layout.Geometry) string {
	border := lipgloss.NewStyle().Foreground(colorDim)
	header := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	outlines := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("Outline", "Stroke", "Closed", "Start", "Bounds", "Segments").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return header.Padding(0, 1)
			}
			return cell
		})
	for _, o := range g.Strokes() {
		start := o.Start()
		outlines.Row(o.Name, o.Stroke.String(), strconv.FormatBool(o.Closed),
			fmt.Sprintf("(%g,%g)", start.X, start.Y), o.Bounds().String(), strconv.Itoa(len(o.Segments)))
	}

	content := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("Element", "Placement").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return header.Padding(0, 1)
			}
			return cell
		}).
		Row("page", g.Page.String()).
		Row("title", fmt.Sprintf("baseline (%g,%g)", g.Title.X, g.Title.Y)).
		Row("date", fmt.Sprintf("baseline (%g,%g)", g.Date.X, g.Date.Y)).
		Row("notes", g.Notes.String()).
		Row("image", g.Image.String()).
		Row("bounds", g.Bounds().String()).
		Row("span", fmt.Sprintf("%g", g.HorizontalSpan()))

	return StyleTitle.Render("Outlines") + "\n" + outlines.Render() + "\n\n" +
		StyleTitle.Render("Content") + "\n" + content.Render()
}

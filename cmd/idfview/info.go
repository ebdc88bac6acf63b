package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/philipparndt/idfview/internal/config"
	"github.com/philipparndt/idfview/pkg/analysis"
	"github.com/philipparndt/idfview/pkg/idf"
	"github.com/philipparndt/idfview/pkg/scene"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}).Width(14)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)
)

var infoOpts config.Options

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display surface counts, coordinate system and bounds",
	Long:  "Show the collections a view would draw, the model's coordinate system and version, and the fitted bounding cube.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&infoOpts.Text, "text", "", "IDF model text")
	infoCmd.Flags().StringVar(&infoOpts.Polygons, "polygons", "", "JSON file mapping colour names to polygon lists")
}

func runInfo(cmd *cobra.Command, args []string) error {
	opts := infoOpts
	opts.Test = true
	if len(args) == 1 {
		opts.File = args[0]
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	summary, err := summarize(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(opts.Title(), opts.Input() != config.InputPolygons, summary))
	return nil
}

func summarize(opts config.Options) (*analysis.Summary, error) {
	switch opts.Input() {
	case config.InputPolygons:
		groups, err := scene.LoadGroupsFile(opts.Polygons)
		if err != nil {
			return nil, err
		}
		collections, err := scene.BuildFromGroups(groups, scene.DefaultOpacity)
		if err != nil {
			return nil, err
		}
		return analysis.AnalyzeCollections(collections)

	case config.InputText:
		m, err := idf.ParseString(opts.Text)
		if err != nil {
			return nil, err
		}
		return analysis.AnalyzeModel(m, scene.DefaultPalette)

	default:
		m, err := idf.ParseFile(opts.File)
		if err != nil {
			return nil, err
		}
		return analysis.AnalyzeModel(m, scene.DefaultPalette)
	}
}

func renderSummary(title string, model bool, s *analysis.Summary) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	b.WriteString(headingStyle.Render(title) + "\n\n")

	if model {
		row("Version", s.Version.String())
		row("Coordinates", s.Mode.String())
		row("Zones", fmt.Sprint(s.Zones))
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Collections") + "\n")
	for _, c := range s.Collections {
		row("  "+c.Name, fmt.Sprintf("%d polygons, %d vertices", c.Polygons, c.Vertices))
	}
	row("  total", fmt.Sprintf("%d polygons", s.Polygons()))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Bounds") + "\n")
	row("  Min", analysis.FormatVector(s.BoundingBox.Min))
	row("  Max", analysis.FormatVector(s.BoundingBox.Max))
	row("  Size", analysis.FormatVector(s.Dimensions))
	row("  Edges", fmt.Sprintf("%d, %.3f to %.3f (avg %.3f)", s.Edges.Count, s.Edges.Min, s.Edges.Max, s.Edges.Avg))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Axis cube") + "\n")
	row("  x", analysis.FormatRange(s.Cube.X))
	row("  y", analysis.FormatRange(s.Cube.Y))
	row("  z", analysis.FormatRange(s.Cube.Z))
	row("  Extent", fmt.Sprintf("%.3f", s.Cube.Extent()))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

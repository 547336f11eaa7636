package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferrolab/ferroci/internal/cvfile"
	"github.com/ferrolab/ferroci/internal/geometry"
)

func newIntersectCommand() *cobra.Command {
	var segmentSpec string

	cmd := &cobra.Command{
		Use:   "intersect --segment x0,y0,x1,y1 <files...>",
		Short: "Intersect a line segment with the curves of the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntersect(cmd, segmentSpec, args)
		},
	}
	cmd.Flags().StringVar(&segmentSpec, "segment", "", "segment endpoints as x0,y0,x1,y1")
	_ = cmd.MarkFlagRequired("segment")
	return cmd
}

func runIntersect(cmd *cobra.Command, segmentSpec string, files []string) error {
	coords, err := parseSegment(segmentSpec)
	if err != nil {
		return err
	}

	annotator := geometry.NewAnnotator()
	for _, path := range files {
		_, series, err := cvfile.ParseFile(path)
		if err != nil {
			return err
		}
		annotator.AddCurve(filepath.Base(path), series)
	}
	annotator.OnLineDrawn(coords[0], coords[1], coords[2], coords[3])

	count := annotator.CalculateAllIntersections()
	fmt.Fprintf(cmd.OutOrStdout(), "%d intersection(s)\n", count)

	rows := make([][]string, 0, count)
	for _, p := range annotator.Points() {
		rows = append(rows, []string{
			p.Curve,
			strconv.FormatFloat(p.X, 'g', 8, 64),
			strconv.FormatFloat(p.Y, 'g', 8, 64),
		})
	}
	if len(rows) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Curve", "Potential", "Current"}, rows))
	}
	return nil
}

// parseSegment parses the four comma-separated segment coordinates.
func parseSegment(spec string) ([4]float64, error) {
	var coords [4]float64
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return coords, fmt.Errorf("segment must be x0,y0,x1,y1, got %q", spec)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return coords, fmt.Errorf("invalid segment coordinate %q: %w", part, err)
		}
		coords[i] = v
	}
	return coords, nil
}

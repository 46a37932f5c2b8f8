package internal

import (
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary statistics about the shape of the triangles in a triangulation.
// Angles are in degrees.
type QualityReport struct {
	Triangles    int
	Vertices     int
	HullVertices int

	MinAngle       float64
	MeanMinAngle   float64
	MedianMinAngle float64
	// Tenth percentile of the per-triangle minimum angle.
	P10MinAngle float64

	MinArea    float64
	MaxArea    float64
	MeanArea   float64
	StdDevArea float64
}

func Quality(triangles TriangleSet) (QualityReport, error) {
	report := QualityReport{Triangles: len(triangles)}
	points := triangles.Points()
	report.Vertices = len(points)
	report.HullVertices = len(ConvexHull(points.SortedLexicographically(true)))
	if len(triangles) == 0 {
		return report, nil
	}

	angles := make(stats.Float64Data, 0, len(triangles))
	areas := make(stats.Float64Data, 0, len(triangles))
	for _, t := range triangles {
		angles = append(angles, t.MinAngle()*180/math.Pi)
		areas = append(areas, math.Abs(t.Area()))
	}

	var err error
	set := func(dst *float64, f func(stats.Float64Data) (float64, error), data stats.Float64Data) {
		if err != nil {
			return
		}
		*dst, err = f(data)
	}
	set(&report.MinAngle, stats.Min, angles)
	set(&report.MeanMinAngle, stats.Mean, angles)
	set(&report.MedianMinAngle, stats.Median, angles)
	set(&report.P10MinAngle, func(d stats.Float64Data) (float64, error) { return stats.PercentileNearestRank(d, 10) }, angles)
	set(&report.MinArea, stats.Min, areas)
	set(&report.MaxArea, stats.Max, areas)
	set(&report.MeanArea, stats.Mean, areas)
	set(&report.StdDevArea, stats.StandardDeviation, areas)
	if err != nil {
		return report, errors.Wrap(err, "computing triangulation statistics")
	}
	return report, nil
}

func (r QualityReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "triangles: %d, vertices: %d, hull vertices: %d\n", r.Triangles, r.Vertices, r.HullVertices)
	fmt.Fprintf(&b, "min angle: %.2f° (mean %.2f°, median %.2f°, p10 %.2f°)\n",
		r.MinAngle, r.MeanMinAngle, r.MedianMinAngle, r.P10MinAngle)
	fmt.Fprintf(&b, "area: min %.4g, max %.4g, mean %.4g, stddev %.4g", r.MinArea, r.MaxArea, r.MeanArea, r.StdDevArea)
	return b.String()
}

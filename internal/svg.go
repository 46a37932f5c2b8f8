package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a real SVG reader. It collects the centers of every <circle> and
// the corners of every <polygon>, ignoring transforms and everything else,
// which is all a hand drawn point set needs. SVG's y axis points down, so the
// coordinates come out mirrored compared to the drawing.
func ParseSVGVertices(r io.Reader) ([]Vertex, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var vertices []Vertex
	for _, circle := range root.FindAll("circle") {
		x, err := parseCoordinate(circle.Attributes["cx"])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(circle.Attributes["cy"])
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, Vertex{x, y})
	}

	for _, polygon := range root.FindAll("polygon") {
		for _, pair := range strings.Fields(polygon.Attributes["points"]) {
			parts := strings.Split(pair, ",")
			if len(parts) != 2 {
				return nil, errors.Errorf("invalid point string %q", pair)
			}
			x, err := parseCoordinate(parts[0])
			if err != nil {
				return nil, err
			}
			y, err := parseCoordinate(parts[1])
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, Vertex{x, y})
		}
	}

	if len(vertices) == 0 {
		return nil, errors.New("no circles or polygons found in svg")
	}
	return vertices, nil
}

func parseCoordinate(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	return f, nil
}

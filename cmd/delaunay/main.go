package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation. Input on stdin should be newline separated points in
// the form "x y". Blank lines and lines starting with # are skipped.
var (
	app = kingpin.New("delaunay", "Delaunay triangulation of a set of points.")

	svgPath     = app.Flag("svg", "Read points from the circles and polygons of an SVG file instead of stdin.").ExistingFile()
	outPath     = app.Flag("out", "Render the triangulation to this PNG file.").String()
	scale       = app.Flag("scale", "Pixels per input unit when rendering.").Default("4").Float64()
	color       = app.Flag("color", "Fill the rendered triangles with a four-coloring.").Bool()
	showImage   = app.Flag("imgcat", "Print the rendered image to the terminal (iTerm only).").Bool()
	dotPath     = app.Flag("dot", "Write the history graph as Graphviz DOT to this file.").String()
	printTree   = app.Flag("tree", "Print the history graph.").Bool()
	printReport = app.Flag("report", "Print triangle quality statistics.").Bool()
	emitGo      = app.Flag("emit-go", "Print the triangles as Go source, for capturing test fixtures.").Bool()
	trace       = app.Flag("trace", "Log every insertion and flip.").Bool()
	shuffleSeed = app.Flag("shuffle-seed", "Insert points in a random order seeded by this value, instead of sorted order.").Int64()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *trace {
		var err error
		logger, err = zap.NewDevelopment()
		kingpin.FatalIfError(err, "creating logger")
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("triangulation failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, in io.Reader, out io.Writer) error {
	var points []advanced.Vertex
	var err error
	if *svgPath != "" {
		points, err = readSVG(*svgPath)
	} else {
		points, err = readPoints(in)
	}
	if err != nil {
		return err
	}
	logger.Sugar().Infow("read points", "count", len(points))

	tracer := advanced.NewZapTracer(logger)
	var graph *advanced.LocationGraph
	if *shuffleSeed != 0 {
		graph, err = buildShuffled(points, *shuffleSeed, tracer)
	} else {
		var triangulation *delaunay.Triangulation
		triangulation, err = delaunay.Triangulate(points, delaunay.WithTracer(tracer))
		if triangulation != nil {
			graph = triangulation.Graph()
		}
	}
	if err != nil {
		return err
	}
	if graph == nil {
		logger.Info("no points to triangulate")
		return nil
	}

	triangles := graph.LeafTriangles(graph.Root())
	logger.Sugar().Infow("triangulated", "triangles", len(triangles), "nodes", graph.Len())
	if *emitGo {
		fmt.Fprintln(out, triangles.GoSource())
	} else {
		for _, t := range triangles.Sorted() {
			fmt.Fprintln(out, t)
		}
	}

	if *printTree {
		fmt.Fprintln(out, graph.TreeString(graph.Root()))
	}

	if *printReport {
		report, err := advanced.Quality(triangles)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, report)
	}

	if *dotPath != "" {
		if err := writeDOT(graph, *dotPath); err != nil {
			return err
		}
		logger.Sugar().Infow("wrote history graph", "path", *dotPath)
	}

	if *outPath != "" {
		opts := advanced.RenderOptions{Scale: *scale, Color: *color}
		if err := graph.SavePNG(*outPath, opts); err != nil {
			return err
		}
		logger.Sugar().Infow("wrote image", "path", *outPath)
		if *showImage {
			if err := catImage(*outPath, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Insert in a shuffled order through a Builder. The first vertex still has to
// be the topmost, since everything else must fall below it.
func buildShuffled(points []advanced.Vertex, seed int64, tracer advanced.Tracer) (*advanced.LocationGraph, error) {
	unique := advanced.NewVertexSet(points...)
	if len(unique) == 0 {
		return nil, nil
	}
	sorted := unique.SortedLexicographically(false)
	rest := sorted[1:]
	rand.New(rand.NewSource(seed)).Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	builder, err := advanced.NewBuilder(sorted[0], advanced.WithTracer(tracer))
	if err != nil {
		return nil, err
	}
	for _, p := range rest {
		if err := builder.Insert(p); err != nil {
			return nil, err
		}
	}
	return builder.Graph(), nil
}

// Print a rendered image inline (iTerm only).
func catImage(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "printing %s to the terminal", path)
	}
	return nil
}

func writeDOT(graph *advanced.LocationGraph, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating DOT file")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "closing DOT file")
		}
	}()
	return graph.WriteDOT(f)
}

func readSVG(path string) ([]advanced.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return advanced.ParseSVGVertices(f)
}

func readPoints(in io.Reader) ([]advanced.Vertex, error) {
	var points []advanced.Vertex
	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (advanced.Vertex, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Vertex{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Vertex{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Vertex{}, errors.Wrap(err, "parsing y")
	}
	return advanced.NewVertex(x, y), nil
}

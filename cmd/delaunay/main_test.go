package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/delaunay/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadPoints(t *testing.T) {
	input := "# corners\n0 0\n  10 0\n\n5 5.5\n"
	points, err := readPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []advanced.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5.5}}, points)
}

func TestReadPoints_Errors(t *testing.T) {
	for _, input := range []string{"1 2 3\n", "x 1\n", "1 y\n", "7\n"} {
		_, err := readPoints(strings.NewReader(input))
		assert.Error(t, err, "%q", input)
	}
	_, err := readPoints(strings.NewReader("0 0\nnope\n"))
	assert.Contains(t, err.Error(), "line 2")
}

func TestBuildShuffled(t *testing.T) {
	points := []advanced.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 3, Y: 4}, {X: 7, Y: 2}, {X: 3, Y: 4}}
	graph, err := buildShuffled(points, 42, advanced.NopTracer{})
	require.NoError(t, err)
	sorted, err := advanced.NewTriangulator().Triangulate(points)
	require.NoError(t, err)
	assert.Equal(t, len(sorted.LeafTriangles(sorted.Root())), len(graph.LeafTriangles(graph.Root())))

	graph, err = buildShuffled(nil, 42, advanced.NopTracer{})
	assert.NoError(t, err)
	assert.Nil(t, graph)
}

func TestRun(t *testing.T) {
	*printReport = true
	*emitGo = false
	defer func() { *printReport = false }()

	var out bytes.Buffer
	err := run(zap.NewNop(), strings.NewReader("0 0\n4 0\n2 3\n"), &out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "triangles: 1, vertices: 3, hull vertices: 3", lines[1])
}

func TestWriteDOT(t *testing.T) {
	graph, err := advanced.NewTriangulator().Triangulate([]advanced.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.dot")
	require.NoError(t, writeDOT(graph, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "->")

	assert.Error(t, writeDOT(graph, filepath.Join(t.TempDir(), "missing", "history.dot")))
}

func TestRun_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	*outPath, *showImage = path, true
	defer func() { *outPath, *showImage = "", false }()

	var out bytes.Buffer
	require.NoError(t, run(zap.NewNop(), strings.NewReader("0 0\n4 0\n2 3\n"), &out))
	assert.Contains(t, out.String(), "1337;File=")

	err := catImage(filepath.Join(t.TempDir(), "missing.png"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "printing")
}

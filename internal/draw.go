package internal

import (
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the triangulation so that hull edges aren't drawn on the
// border of the image.
const drawPadding = 40

type RenderOptions struct {
	// Pixels per unit of input coordinates.
	Scale float64
	// Fill triangles with their four-coloring.
	Color bool
	// Write each triangle's debug name at its centroid.
	Labels bool
}

// One hue per color of the four-coloring.
var fourColorPalette = [4]color.Color{
	colorful.Hsv(10, 0.6, 0.85),
	colorful.Hsv(130, 0.5, 0.75),
	colorful.Hsv(210, 0.55, 0.85),
	colorful.Hsv(50, 0.6, 0.9),
}

// Draw the current triangulation below the root into a new image.
func (g *LocationGraph) Render(opts RenderOptions) *gg.Context {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	leaves := g.LeafNodes(g.root)
	bounds := r2.EmptyRect()
	for _, id := range leaves {
		for _, p := range g.nodes[id].Triangle.Points() {
			if !p.IsGhost() {
				bounds = bounds.AddPoint(p.Point())
			}
		}
	}
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{})
	}

	width := int(math.Ceil(opts.Scale*bounds.X.Length())) + drawPadding*2
	height := int(math.Ceil(opts.Scale*bounds.Y.Length())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Origin at the bottom left, so the image isn't upside down
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	if opts.Color {
		g.FourColor(g.root)
	}

	for _, id := range leaves {
		node := g.nodes[id]
		if node.Triangle.HasGhost() {
			continue
		}
		tracePath(c, node.Triangle)
		if opts.Color && node.Color >= 0 {
			c.SetColor(fourColorPalette[node.Color])
		} else {
			c.SetRGBA(0.3, 0.2, 1, 0.5)
		}
		c.Fill()
	}

	c.SetLineWidth(2)
	c.SetRGB(1, 1, 1)
	for _, id := range leaves {
		node := g.nodes[id]
		if node.Triangle.HasGhost() {
			continue
		}
		tracePath(c, node.Triangle)
		c.Stroke()
	}

	for _, id := range leaves {
		for _, p := range g.nodes[id].Triangle.Points() {
			if p.IsGhost() {
				continue
			}
			c.DrawCircle(p.X, p.Y, 3/opts.Scale)
			c.Fill()
		}
	}

	if opts.Labels {
		for _, id := range leaves {
			node := g.nodes[id]
			if node.Triangle.HasGhost() {
				continue
			}
			// Text has to be drawn in device space or it comes out mirrored
			center := node.Triangle.Centroid()
			x, y := c.TransformPoint(center.X, center.Y)
			c.Push()
			c.Identity()
			c.SetRGB(0, 0, 0)
			c.DrawStringAnchored(dbg.Name(node), x, y, 0.5, 0.5)
			c.Pop()
		}
	}
	return c
}

func tracePath(c *gg.Context, t Triangle) {
	p := t.Points()
	c.MoveTo(p[0].X, p[0].Y)
	c.LineTo(p[1].X, p[1].Y)
	c.LineTo(p[2].X, p[2].Y)
	c.ClosePath()
}

func (g *LocationGraph) SavePNG(path string, opts RenderOptions) error {
	if err := g.Render(opts).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving triangulation image to %s", path)
	}
	return nil
}

// Helper to draw and print the triangulation in the terminal (iTerm only) for
// debugging.
func (g *LocationGraph) dbgDraw(scale float64) {
	const path = "/tmp/delaunay.png"
	if err := g.SavePNG(path, RenderOptions{Scale: scale, Color: true, Labels: true}); err != nil {
		g.tracer.Tracef("debug draw failed: %v", err)
		return
	}
	imgcat.CatFile(path, os.Stdout)
}

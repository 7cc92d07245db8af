package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/core/shadows"
	"chosenoffset.com/raycaster/internal/render"
)

const observerRadius = 10

var (
	backgroundColor = color.Black
	wallColor       = color.White
	observerColor   = color.White
	rayColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 77}
)

// litAlpha is the opacity of the filled visible region.
const litAlpha = 0.08

// Draw renders the scene to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	if g.ShowLit {
		g.drawLitRegion(screen)
	}
	g.drawWalls(screen)
	g.drawRays(screen)
	g.drawObserver(screen)

	if g.ShowDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawWalls(screen render.Image) {
	for _, w := range g.Scene.Walls() {
		g.Renderer.StrokeLine(screen,
			float32(w.A.X), float32(w.A.Y),
			float32(w.B.X), float32(w.B.Y),
			1, wallColor)
	}
}

func (g *Game) drawRays(screen render.Image) {
	for _, r := range g.Scene.Rays() {
		g.Renderer.StrokeLine(screen,
			float32(r.Origin.X), float32(r.Origin.Y),
			float32(r.End.X), float32(r.End.Y),
			2, rayColor)
	}
}

func (g *Game) drawObserver(screen render.Image) {
	obs := g.Scene.Observer()
	g.Renderer.FillCircle(screen, float32(obs.X), float32(obs.Y), observerRadius, observerColor)
}

// drawLitRegion fills the triangles between neighbouring rays. Rays more
// than one degree apart are not joined, so gaps in the fan stay dark.
func (g *Game) drawLitRegion(screen render.Image) {
	rays := g.Scene.Rays()
	if len(rays) < 2 {
		return
	}

	if g.WhiteImg == nil {
		g.WhiteImg = g.Renderer.NewImage(3, 3)
		g.WhiteImg.Fill(color.White)
	}

	vertices, indices := litTriangles(g.Scene.Observer(), rays)
	if len(indices) == 0 {
		return
	}
	screen.DrawTriangles(vertices, indices, g.WhiteImg, nil)
}

// litTriangles builds a triangle fan around the observer. Vertex 0 is the
// observer and vertex i+1 is the end of rays[i].
func litTriangles(observer shadows.Point, rays shadows.Fan) ([]render.Vertex, []uint16) {
	vertex := func(p shadows.Point) render.Vertex {
		return render.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: litAlpha,
		}
	}

	vertices := make([]render.Vertex, 0, len(rays)+1)
	vertices = append(vertices, vertex(observer))
	for _, r := range rays {
		vertices = append(vertices, vertex(r.End))
	}

	var indices []uint16
	for _, w := range rays.Wedges() {
		indices = append(indices, 0, uint16(w[0]+1), uint16(w[1]+1))
	}

	return vertices, indices
}

func (g *Game) drawDebug(screen render.Image) {
	obs := g.Scene.Observer()
	rays := g.Scene.Rays()

	text := fmt.Sprintf("observer (%.0f, %.0f)\nrays %d/%d  walls %d\nframe %d",
		obs.X, obs.Y, len(rays), shadows.FanDirections, len(g.Scene.Walls()), g.Scene.Frame())

	if nearest, ok := rays.Nearest(); ok {
		farthest, _ := rays.Farthest()
		text += fmt.Sprintf("\nnearest %.1f @%d  farthest %.1f @%d",
			nearest.Distance, nearest.Angle, farthest.Distance, farthest.Angle)
	}

	g.Renderer.DrawText(screen, text, 8, 8)
}

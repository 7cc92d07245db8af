package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop normally.
var ErrTerminated = errors.New("render: game terminated")

// Renderer draws the few primitives the visualizer needs: walls and rays as
// lines, the observer as a disc and the overlay as text. Game code only holds
// this interface, so the drawing backend can be swapped or faked in tests.
type Renderer interface {
	NewImage(width, height int) Image

	// Shapes
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// DrawText writes white debug text with its top-left corner at (x, y).
	DrawText(dst Image, text string, x, y int)
}

// Image is a drawing target. The screen handed to Game.Draw is one, and so is
// the 1x1 source texture used for the lit triangles.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	// DrawTriangles fills triangles, coloured per vertex, sampling from img.
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)

	Dispose()
}

// DrawTrianglesOptions tunes DrawTriangles. Nil means the backend defaults.
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex is one triangle corner: destination position, source texel and a
// colour scale in [0, 1].
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager exposes the per-frame input the observer and toggles react to.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
}

// Key names a keyboard key independently of the backend.
type Key int

// Key constants for the keys the game reacts to
const (
	KeyF1     Key = iota // Debug overlay toggle
	KeyL                 // Lit region toggle
	KeyEscape            // Quit
)

// Game is driven by an Engine once per frame.
type Game interface {
	// Update advances one frame. Returning ErrTerminated stops the loop cleanly.
	Update() error

	// Draw paints the current frame onto screen.
	Draw(screen Image)

	// Layout receives the window size and returns the logical screen size.
	// The visualizer keeps them equal so resizing moves the boundary walls.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks until the window closes or game terminates.
	RunGame(game Game) error
}

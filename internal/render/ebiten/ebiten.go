package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/raycaster/internal/render"
)

// EbitenRenderer draws with ebiten's vector and debug-text helpers.
type EbitenRenderer struct{}

// NewRenderer returns the ebiten renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImage allocates an offscreen ebiten image.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// StrokeLine draws an aliased line of the given width.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(dst.(*EbitenImage).img, x0, y0, x1, y1, strokeWidth, clr, false)
}

// FillCircle draws an aliased disc.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst.(*EbitenImage).img, x, y, radius, clr, false)
}

// DrawText draws text with the built-in debug font, always white.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int) {
	ebitenutil.DebugPrintAt(dst.(*EbitenImage).img, str, x, y)
}

// EbitenImage is a render.Image backed by *ebiten.Image.
type EbitenImage struct {
	img *ebiten.Image
}

func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose frees the GPU texture.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawTriangles converts the vertices to ebiten's type and draws them.
func (i *EbitenImage) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	ebitenVertices := make([]ebiten.Vertex, len(vertices))
	for j, v := range vertices {
		ebitenVertices[j] = ebiten.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   v.SrcX,
			SrcY:   v.SrcY,
			ColorR: v.ColorR,
			ColorG: v.ColorG,
			ColorB: v.ColorB,
			ColorA: v.ColorA,
		}
	}

	ebitenImg := img.(*EbitenImage).img

	if opts == nil {
		i.img.DrawTriangles(ebitenVertices, indices, ebitenImg, nil)
		return
	}

	i.img.DrawTriangles(ebitenVertices, indices, ebitenImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: opts.AntiAlias,
	})
}

// EbitenInputManager reads keyboard and cursor state from ebiten.
type EbitenInputManager struct{}

// NewInputManager returns the ebiten input reader.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed is true only on the frame the key went down.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GetCursorPosition returns the cursor in window coordinates.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// keyToEbitenKey maps backend-neutral keys to ebiten keys.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyF1:
		return ebiten.KeyF1
	case render.KeyL:
		return ebiten.KeyL
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// EbitenEngine runs the window and loop through ebiten.
type EbitenEngine struct{}

// NewEngine returns the ebiten engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable lets the user drag the window edges, which feeds
// Layout and so Scene.Resize.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game. A game that stops with
// render.ErrTerminated ends the loop without an error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter lets ebiten drive a render.Game.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

package game

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/pkg/logger"
)

// statsInterval is how often, in frames, fan stats are logged at debug level.
const statsInterval = 60

// Publisher receives a copy of every frame after it is recomputed.
type Publisher interface {
	Broadcast(s scene.Snapshot)
}

// Game drives one scene: input is applied to the scene, the fan is rebuilt,
// and the result is drawn. It implements render.Game.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Scene        *scene.Scene
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Publisher    Publisher
	WhiteImg     render.Image

	// UI state
	ShowDebug bool
	ShowLit   bool

	// Cursor tracking; the observer only follows actual pointer motion
	cursorX, cursorY int
	cursorSeen       bool
}

// NewGame creates a game for s drawn with r and controlled through input.
func NewGame(s *scene.Scene, r render.Renderer, input render.InputManager) *Game {
	w, h := s.Size()
	return &Game{
		ScreenWidth:  int(w),
		ScreenHeight: int(h),
		Scene:        s,
		Renderer:     r,
		InputMgr:     input,
		ShowLit:      true,
	}
}

// SetPublisher attaches a frame publisher such as the websocket feed.
func (g *Game) SetPublisher(p Publisher) {
	g.Publisher = p
}

// Update applies input, then recomputes the fan. Resizes were already
// applied by Layout, so the fan never lags the current frame's state.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		logger.Log.Info("quit requested")
		return render.ErrTerminated
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF1) {
		g.ShowDebug = !g.ShowDebug
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyL) {
		g.ShowLit = !g.ShowLit
	}

	g.updateObserver()
	g.Scene.Tick()

	if g.Publisher != nil {
		g.Publisher.Broadcast(g.Scene.Snapshot())
	}

	if g.Scene.Frame()%statsInterval == 0 {
		obs := g.Scene.Observer()
		logger.Log.WithFields(logrus.Fields{
			"frame":    g.Scene.Frame(),
			"observer": obs,
			"rays":     len(g.Scene.Rays()),
		}).Debug("fan rebuilt")
	}

	return nil
}

// updateObserver moves the observer to the cursor when the cursor moved.
func (g *Game) updateObserver() {
	x, y := g.InputMgr.GetCursorPosition()
	if !g.cursorSeen {
		g.cursorX, g.cursorY = x, y
		g.cursorSeen = true
		return
	}
	if x == g.cursorX && y == g.cursorY {
		return
	}
	g.cursorX, g.cursorY = x, y
	g.Scene.SetObserverPosition(float64(x), float64(y))
}

// Layout handles window resize by replacing the boundary walls.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		logger.Log.WithFields(logrus.Fields{
			"width":  outsideWidth,
			"height": outsideHeight,
		}).Info("viewport resized")
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.Scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

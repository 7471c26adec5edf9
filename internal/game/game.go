package game

import (
	"fmt"
	"log/slog"
	"time"

	"openstudio/internal/camera"
	"openstudio/internal/config"
	"openstudio/internal/engine"
	"openstudio/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Game owns the window and drives the editor once per frame.
type Game struct {
	Config    config.Config
	World     *world.World
	Editor    *Editor
	DebugMode bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64

	log *slog.Logger
}

func New(cfg config.Config) *Game {
	rng := world.NewRand(cfg.City.Seed)
	w := world.New(world.CityOptions{Buildings: cfg.City.Buildings}, rng)
	ed := NewEditor(w.Scene, w.Regions, Options{
		Camera:         cfg.Camera.Options(),
		Highlight:      cfg.HighlightColor(),
		SpinRate:       cfg.Spin.Rate,
		SpinTimeScaled: cfg.Spin.TimeScaled,
		Rand:           rng,
	})
	return &Game{
		Config: cfg,
		World:  w,
		Editor: ed,
		log:    slog.With("component", "game"),
	}
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	defer g.Editor.Close()

	rl.SetTargetFPS(win.FPS)
	rl.SetExitKey(0)
	initRayguiStyle()

	g.Editor.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	g.log.Info("viewport ready", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight(), "entities", g.World.Scene.Len())

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	g.log.Info("viewport closed")
}

func (g *Game) Update() {
	updateStart := time.Now()
	dt := rl.GetFrameTime()

	if rl.IsWindowResized() {
		g.Editor.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	g.handlePointer()
	g.handleKeys()
	g.Editor.Update(dt)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// handlePointer maps mouse input on the 3D view. Left click grabs a gizmo
// axis or picks, right drag orbits, middle drag pans, the wheel zooms.
func (g *Game) handlePointer() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	mouse := rl.GetMousePosition()
	overPanel := mouseInPanel(mouse, screenW, screenH)
	ndc := toNDC(mouse, screenW, screenH)

	switch {
	case g.Editor.GizmoDragging():
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			g.Editor.DragGizmo(ndc)
		} else {
			g.Editor.EndGizmoDrag()
		}
	case overPanel:
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		if !g.Editor.BeginGizmoDrag(ndc) {
			g.Editor.PointerDown(ndc)
		}
	default:
		g.Editor.HoverGizmo(ndc)
		if g.DebugMode {
			g.Editor.Hover(ndc)
		}
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		g.Editor.Orbit(rl.GetMouseDelta())
	}
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		g.Editor.Pan(rl.GetMouseDelta())
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		g.Editor.Zoom(wheel)
	}
}

func (g *Game) handleKeys() {
	if g.Editor.ui.editing() {
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyF1):
		g.DebugMode = !g.DebugMode
	case rl.IsKeyPressed(rl.KeyC):
		g.Editor.AddCube()
	case rl.IsKeyPressed(rl.KeyL):
		g.Editor.AddLight()
	case rl.IsKeyPressed(rl.KeySpace):
		g.Editor.ToggleAnimation()
	case rl.IsKeyPressed(rl.KeyF):
		if id := g.Editor.Snapshot().ID; id != engine.NoID {
			g.Editor.FocusEntity(id)
		}
	case rl.IsKeyPressed(rl.KeyEscape):
		g.Editor.Deselect()
	case rl.IsKeyPressed(rl.KeyW):
		g.Editor.SetGizmoMode(GizmoMove)
	case rl.IsKeyPressed(rl.KeyE):
		g.Editor.SetGizmoMode(GizmoRotate)
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(world.BackgroundColor)

	drawStart := time.Now()
	g.Editor.View(func(cam rl.Camera3D, state camera.State, entities []*engine.Entity) {
		rl.BeginMode3D(cam)
		g.World.Renderer.Draw(state, entities)
		g.Editor.drawGizmo()
		if g.DebugMode {
			g.Editor.drawHoverBounds()
		}
		rl.EndMode3D()
	})
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.Editor.DrawUI()
	if g.DebugMode {
		g.drawDebug()
	}
	rl.EndDrawing()
}

func (g *Game) drawDebug() {
	x := outlinerWidth + 10
	y := topBarHeight + 10
	drawn, culled := g.World.Renderer.Stats()
	state := g.Editor.CameraState()

	lines := []string{
		fmt.Sprintf("Camera:  (%.1f, %.1f, %.1f)", state.Position.X, state.Position.Y, state.Position.Z),
		fmt.Sprintf("Target:  (%.1f, %.1f, %.1f)", state.Target.X, state.Target.Y, state.Target.Z),
		fmt.Sprintf("Drawn:   %d  culled %d", drawn, culled),
		fmt.Sprintf("Update:  %.2f ms", g.updateMs),
		fmt.Sprintf("Draw:    %.2f ms", g.drawMs),
	}
	for i, line := range lines {
		rl.DrawText(line, x, y+int32(i)*20, 16, rl.Green)
	}
}

// toNDC converts a window position in pixels to normalized device
// coordinates with x to the right and y up.
func toNDC(p rl.Vector2, screenW, screenH float32) rl.Vector2 {
	return rl.Vector2{
		X: p.X/screenW*2 - 1,
		Y: -(p.Y/screenH*2 - 1),
	}
}

package game

import (
	"fmt"

	"openstudio/internal/assistant"
	"openstudio/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	topBarHeight   int32 = 36
	statusHeight   int32 = 24
	outlinerWidth  int32 = 210
	inspectorWidth int32 = 300
)

// Theme colors, indigo on near black.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorBgActive  = rl.NewColor(48, 48, 65, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSelection = rl.NewColor(108, 99, 255, 60)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// DrawUI draws the overlay: toolbar on top, outliner left, inspector right, status line at the bottom.
// It must be called outside the editor lock since buttons issue editor commands.
func (e *Editor) DrawUI() {
	e.ui.fieldHoveredAny = false

	e.drawToolbar()
	e.drawOutliner()
	e.drawInspector()
	e.drawChat()
	e.drawStatus()

	if e.ui.fieldHoveredAny || e.ui.fieldDragging {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (e *Editor) drawToolbar() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, screenW, 1, colorBorder)

	rl.DrawText("OPEN STUDIO", 12, 10, 18, colorAccent)

	x := float32(150)
	button := func(label string, w float32) bool {
		pressed := gui.Button(rl.Rectangle{X: x, Y: 6, Width: w, Height: 24}, label)
		x += w + 6
		return pressed
	}

	if button("Add Cube", 90) {
		e.AddCube()
	}
	if button("Add Light", 90) {
		e.AddLight()
	}
	spinLabel := "Animate"
	if e.Spinning() {
		spinLabel = "Stop"
	}
	if button(spinLabel, 80) {
		e.ToggleAnimation()
	}

	x += 20
	for _, r := range e.Regions() {
		w := float32(rl.MeasureText(r.Name, 15) + 20)
		if button(r.Name, w) {
			if err := e.FocusRegion(r.Name); err != nil {
				e.log.Warn("focus failed", "error", err)
			}
		}
	}
}

func (e *Editor) drawStatus() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	y := screenH - statusHeight
	rl.DrawRectangle(outlinerWidth, y, screenW-outlinerWidth-inspectorWidth, statusHeight, colorBgPanel)

	text := assistant.Greeting
	if snap := e.Snapshot(); !snap.IsEmpty() {
		text = fmt.Sprintf("Selected %s (#%d)", snap.Name, snap.ID)
	}
	rl.DrawText(text, outlinerWidth+10, y+6, 14, colorTextMuted)
	rl.DrawFPS(screenW-inspectorWidth-90, y+4)
}

// mouseInPanel reports whether p is over any overlay panel rather than the 3D view.
func mouseInPanel(p rl.Vector2, screenW, screenH float32) bool {
	switch {
	case p.Y <= float32(topBarHeight):
		return true
	case p.X <= float32(outlinerWidth):
		return true
	case p.X >= screenW-float32(inspectorWidth):
		return true
	case p.Y >= screenH-float32(statusHeight):
		return true
	}
	return false
}

// outlinerRow is a copy of what the outliner shows for one entity.
type outlinerRow struct {
	id         engine.ID
	label      string
	selectable bool
}

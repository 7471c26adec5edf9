package game

import (
	"strconv"
	"strings"

	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const colorFieldID = "color"

// inspectorState is UI only and touched by the render loop alone.
type inspectorState struct {
	activeInputID     string // e.g. "pos.x", "rot.y", "color"
	inputTextValue    string
	fieldDragging     bool
	fieldDragID       string
	fieldDragStartX   float32
	fieldDragStartVal float32
	fieldHoveredAny   bool

	outlinerScroll    int32
	lastOutlinerClick float64
	lastClickedID     engine.ID

	chat chatLog
}

// editing reports whether a text field has keyboard focus.
func (s *inspectorState) editing() bool {
	return s.activeInputID != ""
}

// drawInspector draws the selection's editable fields on the right.
func (e *Editor) drawInspector() {
	screenW := int32(rl.GetScreenWidth())
	panelX := screenW - inspectorWidth
	panelY := topBarHeight
	panelW := inspectorWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)
	rl.DrawText("Inspector", panelX+12, panelY+8, 18, colorTextSecondary)

	snap := e.Snapshot()
	y := panelY + 40
	if snap.IsEmpty() {
		rl.DrawText("Click a building or cube", panelX+12, y, 16, colorTextMuted)
		if e.ui.activeInputID != chatFieldID {
			e.ui.activeInputID = ""
		}
		return
	}

	rl.DrawText(snap.Name, panelX+12, y, 20, colorTextPrimary)
	y += 34

	labelW := int32(45)
	fieldW := (panelW - 38 - labelW) / 3
	fieldH := int32(24)
	startX := panelX + 12 + labelW

	row := func(label, prefix string, v rl.Vector3) {
		rl.DrawText(label, panelX+14, y+4, 16, colorTextMuted)
		for i, axis := range []struct {
			id    string
			value float32
		}{{prefix + ".x", v.X}, {prefix + ".y", v.Y}, {prefix + ".z", v.Z}} {
			x := startX + int32(i)*(fieldW+2)
			if edits, ok := e.drawFloatField(x, y, fieldW, fieldH, axis.id, axis.value); ok {
				e.ApplyEdit(edits)
			}
		}
		y += fieldH + 4
	}
	row("Pos", "pos", snap.Position)
	row("Rot", "rot", snap.Rotation)
	y += 8

	rl.DrawText("Color", panelX+14, y+4, 16, colorTextMuted)
	rl.DrawRectangle(startX, y, fieldH, fieldH, snap.Color)
	if edits, ok := e.drawHexField(startX+fieldH+6, y, 2*fieldW, fieldH, engine.HexColor(snap.Color)); ok {
		e.ApplyEdit(edits)
	}
}

// drawFloatField draws an editable number. Dragging scrubs the value, a
// click enters text mode. It returns the edit to apply when the value changed.
func (e *Editor) drawFloatField(x, y, w, h int32, id string, value float32) (Edits, bool) {
	s := &e.ui
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	editMode := s.activeInputID == id
	isDragging := s.fieldDragging && s.fieldDragID == id

	if hovered && !editMode {
		s.fieldHoveredAny = true
	}
	drawFieldBackground(x, y, w, h, editMode, hovered || isDragging)

	if !editMode {
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			s.fieldDragging = true
			s.fieldDragID = id
			s.fieldDragStartX = mousePos.X
			s.fieldDragStartVal = value
		}

		if isDragging {
			deltaX := mousePos.X - s.fieldDragStartX
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				// 100 pixels per unit, shift for fine control
				sensitivity := float32(0.01)
				if rl.IsKeyDown(rl.KeyLeftShift) {
					sensitivity = 0.001
				}
				rl.DrawText(formatField(value), x+6, y+5, 15, colorTextSecondary)
				if deltaX != 0 {
					return fieldEdit(id, s.fieldDragStartVal+deltaX*sensitivity)
				}
				return Edits{}, false
			}
			if deltaX > -2 && deltaX < 2 {
				s.activeInputID = id
				s.inputTextValue = formatField(value)
			}
			s.fieldDragging = false
			s.fieldDragID = ""
		}
		rl.DrawText(formatField(value), x+6, y+5, 15, colorTextSecondary)
		return Edits{}, false
	}

	rl.DrawText(s.inputTextValue+"_", x+6, y+5, 15, colorTextPrimary)
	s.readTextInput(func(ch rune) bool {
		return (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
	})
	return s.commitTextInput(id, hovered)
}

// drawHexField draws the "#rrggbb" color input.
func (e *Editor) drawHexField(x, y, w, h int32, value string) (Edits, bool) {
	s := &e.ui
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)
	editMode := s.activeInputID == colorFieldID

	drawFieldBackground(x, y, w, h, editMode, hovered)

	if !editMode {
		rl.DrawText(value, x+6, y+5, 15, colorTextSecondary)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			s.activeInputID = colorFieldID
			s.inputTextValue = value
		}
		return Edits{}, false
	}

	rl.DrawText(s.inputTextValue+"_", x+6, y+5, 15, colorTextPrimary)
	s.readTextInput(func(ch rune) bool {
		return ch == '#' || strings.ContainsRune("0123456789abcdefABCDEF", ch)
	})
	return s.commitTextInput(colorFieldID, hovered)
}

func (s *inspectorState) readTextInput(accept func(rune) bool) {
	for {
		key := rl.GetCharPressed()
		if key == 0 {
			break
		}
		if ch := rune(key); accept(ch) {
			s.inputTextValue += string(ch)
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(s.inputTextValue) > 0 {
		s.inputTextValue = s.inputTextValue[:len(s.inputTextValue)-1]
	}
}

// commitTextInput ends text mode on enter, tab or a click elsewhere and
// parses the text. Escape cancels.
func (s *inspectorState) commitTextInput(id string, hovered bool) (Edits, bool) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		s.activeInputID = ""
		s.inputTextValue = ""
		return Edits{}, false
	}
	clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
	if !rl.IsKeyPressed(rl.KeyEnter) && !rl.IsKeyPressed(rl.KeyKpEnter) && !rl.IsKeyPressed(rl.KeyTab) && !clickedOutside {
		return Edits{}, false
	}
	text := s.inputTextValue
	s.activeInputID = ""
	s.inputTextValue = ""
	return parseField(id, text)
}

func drawFieldBackground(x, y, w, h int32, editMode, hovered bool) {
	bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(bounds, 0.2, 4, 1, colorAccent)
	}
}

func formatField(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

// fieldEdit builds the edit that sets one axis, e.g. "rot.y".
func fieldEdit(id string, v float32) (Edits, bool) {
	group, axis, ok := strings.Cut(id, ".")
	if !ok {
		return Edits{}, false
	}
	var a AxisEdit
	switch axis {
	case "x":
		a.X = &v
	case "y":
		a.Y = &v
	case "z":
		a.Z = &v
	default:
		return Edits{}, false
	}
	switch group {
	case "pos":
		return Edits{Position: &a}, true
	case "rot":
		return Edits{Rotation: &a}, true
	}
	return Edits{}, false
}

// parseField turns the text typed into field id into an edit.
// Text that does not parse yields no edit.
func parseField(id, text string) (Edits, bool) {
	if id == colorFieldID {
		c, err := engine.ParseHexColor(text)
		if err != nil {
			return Edits{}, false
		}
		return Edits{Color: &c}, true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return Edits{}, false
	}
	return fieldEdit(id, float32(v))
}

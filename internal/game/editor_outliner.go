package game

import (
	"fmt"

	"openstudio/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	outlinerItemHeight int32   = 22
	doubleClickSeconds float64 = 0.3
)

// outlinerRows copies what the outliner needs so drawing happens without the lock.
// reveal is the index of a row added since the last call, or -1.
func (e *Editor) outlinerRows() (rows []outlinerRow, reveal int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	reveal = -1
	entities := e.scene.Entities()
	rows = make([]outlinerRow, len(entities))
	for i, ent := range entities {
		if ent.ID == e.reveal {
			reveal = i
		}
		rows[i] = outlinerRow{
			id:         ent.ID,
			label:      fmt.Sprintf("%s  %s", ent.Kind, ent.DisplayName()),
			selectable: ent.Selectable(),
		}
	}
	e.reveal = engine.NoID
	return rows, reveal
}

// drawOutliner lists all entities on the left. A click selects, a double click focuses.
func (e *Editor) drawOutliner() {
	panelX := int32(0)
	panelY := topBarHeight
	panelW := outlinerWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, colorBorder)
	rl.DrawText("Outliner", panelX+12, panelY+8, 18, colorTextSecondary)

	mousePos := rl.GetMousePosition()
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)

	rows, reveal := e.outlinerRows()

	if mouseInPanel && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		e.ui.outlinerScroll -= int32(rl.GetMouseWheelMove() * 20)
	}
	if reveal >= 0 {
		e.ui.outlinerScroll = revealScroll(e.ui.outlinerScroll, int32(reveal), panelH-30)
	}
	maxScroll := max(int32(len(rows))*outlinerItemHeight-panelH+30, 0)
	e.ui.outlinerScroll = min(max(e.ui.outlinerScroll, 0), maxScroll)

	current := e.Snapshot().ID
	y := panelY + 30

	rl.BeginScissorMode(panelX, panelY+28, panelW, panelH-28)
	for i, row := range rows {
		itemY := y + int32(i)*outlinerItemHeight - e.ui.outlinerScroll
		if itemY+outlinerItemHeight < panelY+28 || itemY > panelY+panelH {
			continue
		}

		hovered := mouseInPanel && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+outlinerItemHeight)
		selected := row.id == current

		switch {
		case selected:
			rl.DrawRectangle(panelX, itemY, panelW, outlinerItemHeight, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, outlinerItemHeight, colorAccent)
		case hovered && row.selectable:
			rl.DrawRectangle(panelX, itemY, panelW, outlinerItemHeight, colorBgHover)
		}

		if hovered && row.selectable && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			now := rl.GetTime()
			if now-e.ui.lastOutlinerClick < doubleClickSeconds && e.ui.lastClickedID == row.id {
				e.FocusEntity(row.id)
			}
			e.Select(row.id)
			e.ui.lastOutlinerClick = now
			e.ui.lastClickedID = row.id
		}

		txtColor := colorTextSecondary
		switch {
		case selected:
			txtColor = colorAccentLight
		case !row.selectable:
			txtColor = colorTextMuted
		}
		rl.DrawText(row.label, panelX+12, itemY+4, 14, txtColor)
	}
	rl.EndScissorMode()
}

// revealScroll returns the smallest change to scroll that puts row index fully
// inside a list view of height visible.
func revealScroll(scroll, index, visible int32) int32 {
	top := index * outlinerItemHeight
	bottom := top + outlinerItemHeight
	switch {
	case top < scroll:
		return top
	case bottom > scroll+visible:
		return bottom - visible
	}
	return scroll
}

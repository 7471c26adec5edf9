package game

import (
	"log/slog"
	"strings"

	"openstudio/internal/assistant"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	chatFieldID           = "chat"
	chatHeight      int32 = 260
	chatLineHeight  int32 = 16
	chatFontSize    int32 = 13
	chatMaxMessages       = 40
)

type chatMessage struct {
	fromUser bool
	text     string
}

// chatLog is the assistant conversation shown under the inspector.
type chatLog struct {
	messages []chatMessage
}

func newChatLog() chatLog {
	return chatLog{messages: []chatMessage{{text: assistant.Greeting}}}
}

// ask records question and the assistant's answer. Blank questions are ignored.
func (c *chatLog) ask(question string) bool {
	question = strings.TrimSpace(question)
	if question == "" {
		return false
	}
	slog.Debug("assistant asked", "topic", assistant.Topic(question))
	c.messages = append(c.messages,
		chatMessage{fromUser: true, text: question},
		chatMessage{text: assistant.Reply(question)},
	)
	if n := len(c.messages); n > chatMaxMessages {
		c.messages = c.messages[n-chatMaxMessages:]
	}
	return true
}

// drawChat draws the assistant panel at the bottom of the inspector column.
func (e *Editor) drawChat() {
	s := &e.ui
	if s.chat.messages == nil {
		s.chat = newChatLog()
	}

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	panelX := screenW - inspectorWidth
	panelY := screenH - chatHeight
	textW := inspectorWidth - 28

	rl.DrawRectangle(panelX, panelY, inspectorWidth, chatHeight, colorBgDark)
	rl.DrawRectangle(panelX, panelY, inspectorWidth, 1, colorBorder)
	rl.DrawText("Assistant", panelX+12, panelY+8, 16, colorTextSecondary)

	inputH := int32(24)
	inputY := screenH - inputH - 8

	// lay out newest first from the input upwards
	measure := func(t string) int32 { return rl.MeasureText(t, chatFontSize) }
	y := inputY - 6
	top := panelY + 30
	rl.BeginScissorMode(panelX, top, inspectorWidth, inputY-top)
	for i := len(s.chat.messages) - 1; i >= 0 && y > top; i-- {
		m := s.chat.messages[i]
		prefix, color := "", colorTextSecondary
		if m.fromUser {
			prefix, color = "> ", colorAccentLight
		}
		lines := wrapText(prefix+m.text, textW, measure)
		y -= int32(len(lines))*chatLineHeight + 6
		for j, line := range lines {
			rl.DrawText(line, panelX+14, y+int32(j)*chatLineHeight, chatFontSize, color)
		}
	}
	rl.EndScissorMode()

	x := panelX + 12
	w := inspectorWidth - 24
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(inputY) && mousePos.Y <= float32(inputY+inputH)
	editMode := s.activeInputID == chatFieldID
	drawFieldBackground(x, inputY, w, inputH, editMode, hovered)

	if !editMode {
		rl.DrawText("Ask the guide...", x+6, inputY+5, 15, colorTextMuted)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			s.activeInputID = chatFieldID
			s.inputTextValue = ""
		}
		return
	}

	rl.DrawText(s.inputTextValue+"_", x+6, inputY+5, 15, colorTextPrimary)
	s.readTextInput(func(ch rune) bool { return ch >= ' ' && ch <= '~' })
	switch {
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		s.chat.ask(s.inputTextValue)
		s.inputTextValue = ""
	case rl.IsKeyPressed(rl.KeyEscape) || (rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered):
		s.activeInputID = ""
		s.inputTextValue = ""
	}
}

// wrapText breaks text into lines no wider than width as reported by measure.
// A single word wider than width gets a line of its own.
func wrapText(text string, width int32, measure func(string) int32) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && measure(candidate) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

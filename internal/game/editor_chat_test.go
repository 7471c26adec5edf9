package game

import (
	"strings"
	"testing"

	"openstudio/internal/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatLog(t *testing.T) {
	t.Run("should open with the greeting", func(t *testing.T) {
		c := newChatLog()
		require.Len(t, c.messages, 1)
		assert.Equal(t, assistant.Greeting, c.messages[0].text)
		assert.False(t, c.messages[0].fromUser)
	})
	t.Run("should append the question and the reply", func(t *testing.T) {
		// given
		c := newChatLog()
		// when
		ok := c.ask("  how do I add a cube? ")
		// then
		require.True(t, ok)
		require.Len(t, c.messages, 3)
		assert.Equal(t, chatMessage{fromUser: true, text: "how do I add a cube?"}, c.messages[1])
		assert.Equal(t, assistant.Reply("how do I add a cube?"), c.messages[2].text)
	})
	t.Run("should ignore blank questions", func(t *testing.T) {
		c := newChatLog()
		assert.False(t, c.ask("   "))
		assert.Len(t, c.messages, 1)
	})
	t.Run("should keep only the latest messages", func(t *testing.T) {
		c := newChatLog()
		for range chatMaxMessages {
			c.ask("light")
		}
		assert.Len(t, c.messages, chatMaxMessages)
		assert.True(t, c.messages[0].fromUser)
	})
}

func TestWrapText(t *testing.T) {
	// every character is 10 wide
	measure := func(s string) int32 { return int32(len(s)) * 10 }

	t.Run("should break between words", func(t *testing.T) {
		lines := wrapText("add a cube to the scene", 100, measure)
		assert.Equal(t, []string{"add a cube", "to the", "scene"}, lines)
		for _, l := range lines {
			assert.LessOrEqual(t, measure(l), int32(100))
		}
	})
	t.Run("should give an overlong word its own line", func(t *testing.T) {
		lines := wrapText("a "+strings.Repeat("x", 20)+" b", 100, measure)
		assert.Equal(t, []string{"a", strings.Repeat("x", 20), "b"}, lines)
	})
	t.Run("should return nothing for blank text", func(t *testing.T) {
		assert.Empty(t, wrapText("  ", 100, measure))
	})
}

// Package assistant answers beginner questions about the editor with canned replies.
package assistant

import (
	"regexp"
	"strings"
)

// Greeting is the first message shown before the user asks anything.
const Greeting = "Hi! I'm your 3D guide. Ask me how to add cubes, lights, animate, or focus the London scene."

const fallback = "I can help with creating cubes, adding lights, selecting objects, simple animation and getting around the London scene. Ask me something specific!"

type topic struct {
	name    string
	pattern *regexp.Regexp
	answer  string
}

// topics are tried in order, the first match wins.
var topics = []topic{
	{
		name:    "cube",
		pattern: regexp.MustCompile(`(add|create).*(cube|box)`),
		answer:  "To add a cube press \"Add Cube\" in the toolbar or C. The new cube is selected right away, so the Inspector shows its transform and color.",
	},
	{
		name:    "light",
		pattern: regexp.MustCompile(`light`),
		answer:  "Lights: \"Add Light\" (or L) places a point light where the camera is. Lights are helpers and cannot be selected.",
	},
	{
		name:    "select",
		pattern: regexp.MustCompile(`(select|click|pick)`),
		answer:  "Selection: left click any building or cube. It turns yellow and shows up in the Inspector. Click empty space or press Escape to deselect.",
	},
	{
		name:    "animate",
		pattern: regexp.MustCompile(`(animate|animation|spin|rotate)`),
		answer:  "Animation: \"Animate\" (or Space) spins whatever is selected around its vertical axis. Select something else and it spins instead.",
	},
	{
		name:    "london",
		pattern: regexp.MustCompile(`(london|city|map)`),
		answer:  "The London scene has a river and three districts: City of London, Canary Wharf and Westminster. Use the region buttons in the toolbar to jump the camera there.",
	},
	{
		name:    "export",
		pattern: regexp.MustCompile(`(export|save|download)`),
		answer:  "Export is not available. Scenes live in memory only; take a screenshot with your system tools if you want to keep one.",
	},
	{
		name:    "help",
		pattern: regexp.MustCompile(`(help|beginner|guide|how)`),
		answer:  "Quick start: 1) Add a cube. 2) Orbit with right drag, pan with middle drag, zoom with the wheel. 3) Select with left click. 4) Edit position, rotation and color in the Inspector. 5) Press Animate to spin it.",
	},
}

// Reply returns the canned answer for question.
func Reply(question string) string {
	t, ok := match(question)
	if !ok {
		return fallback
	}
	return t.answer
}

// Topic returns the name of the topic question falls under, or "" if none does.
func Topic(question string) string {
	t, _ := match(question)
	return t.name
}

func match(question string) (topic, bool) {
	text := strings.ToLower(strings.TrimSpace(question))
	for _, t := range topics {
		if t.pattern.MatchString(text) {
			return t, true
		}
	}
	return topic{}, false
}

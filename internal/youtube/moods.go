package youtube

import "strings"

// Mood is a curated search shortcut shown on the browse screen.
type Mood struct {
	Name  string
	Emoji string
	Query string
}

// Moods lists the curated mood searches in display order.
var Moods = []Mood{
	{Name: "Romantic", Emoji: "💖", Query: "romantic love songs playlist"},
	{Name: "Workout", Emoji: "💪", Query: "workout motivation music"},
	{Name: "Focus", Emoji: "🎯", Query: "focus concentration study music"},
	{Name: "Sad", Emoji: "🌧", Query: "sad emotional songs"},
	{Name: "Party", Emoji: "🎉", Query: "party dance hits"},
}

// MoodByName returns the mood with the given name, if it exists.
// The match is case-insensitive.
func MoodByName(name string) (Mood, bool) {
	for _, m := range Moods {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mood{}, false
}

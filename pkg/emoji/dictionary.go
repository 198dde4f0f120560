// Package emoji provides the fixed dictionary of canonical `:shortname:`
// emoji and a similarity function used by rule 23 (emoji-spellcheck).
package emoji

import "strings"

// Names is the fixed dictionary of canonical emoji shortnames: the common
// subset GitHub/Slack-flavored Markdown writers actually use. It is not
// the full gemoji set.
var Names = buildNames()

func buildNames() map[string]struct{} {
	names := []string{
		"smile", "smiley", "grin", "laughing", "joy", "rofl", "wink",
		"blush", "heart_eyes", "kissing_heart", "thinking", "neutral_face",
		"expressionless", "unamused", "disappointed", "worried", "cry",
		"sob", "angry", "rage", "triumph", "sleepy", "tired_face", "weary",
		"sweat", "pensive", "confused", "confounded", "astonished",
		"scream", "fearful", "flushed", "hushed", "frowning", "anguished",
		"cold_sweat", "nerd_face", "sunglasses", "zany_face", "raised_eyebrow",
		"rolling_eyes", "slight_smile", "upside_down_face", "wave", "clap",
		"+1", "thumbsup", "-1", "thumbsdown", "ok_hand", "pray", "muscle",
		"point_right", "point_left", "point_up", "point_down", "raised_hands",
		"handshake", "fire", "sparkles", "star", "star2", "boom", "zap",
		"heart", "broken_heart", "two_hearts", "sparkling_heart", "100",
		"warning", "white_check_mark", "heavy_check_mark", "x", "heavy_multiplication_x",
		"question", "exclamation", "bangbang", "interrobang", "bulb", "memo",
		"pencil", "book", "books", "bookmark", "link", "paperclip", "email",
		"inbox_tray", "outbox_tray", "package", "calendar", "date", "clock1",
		"hourglass", "alarm_clock", "rocket", "gear", "wrench", "hammer",
		"lock", "unlock", "key", "mag", "bell", "no_bell", "speech_balloon",
		"thought_balloon", "eyes", "ear", "tada", "confetti_ball", "gift",
		"trophy", "medal", "crown", "dog", "cat", "mouse", "rabbit", "fox_face",
		"bear", "panda_face", "koala", "tiger", "lion_face", "cow", "pig",
		"frog", "monkey_face", "chicken", "penguin", "bird", "baby_chick",
		"snail", "bug", "ant", "bee", "beetle", "spider", "octopus", "whale",
		"dolphin", "fish", "shark", "turtle", "apple", "banana", "watermelon",
		"grapes", "lemon", "pineapple", "strawberry", "tomato", "carrot",
		"corn", "pizza", "hamburger", "fries", "hotdog", "taco", "burrito",
		"popcorn", "doughnut", "cookie", "cake", "birthday", "coffee", "tea",
		"beer", "beers", "wine_glass", "champagne", "sunny", "cloud",
		"rainbow", "snowflake", "umbrella", "zzz", "bomb", "anchor", "rocket_ship",
		"computer", "iphone", "phone", "battery", "bulb2", "tv", "camera",
		"video_camera", "movie_camera", "floppy_disk", "cd", "dvd", "loud_sound",
		"mute", "microphone", "headphones", "radio", "musical_note", "notes",
		"guitar", "checkered_flag", "triangular_flag_on_post", "earth_americas",
		"world_map", "flag_white", "construction", "no_entry", "stop_sign",
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Known reports whether name is a canonical dictionary entry.
func Known(name string) bool {
	_, ok := Names[name]
	return ok
}

// normalize strips hyphens/underscores and lowercases, for fuzzy comparison.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

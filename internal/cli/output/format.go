package output

import "strings"

// FormatHeader renders a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue renders a markdown bold-key line.
func FormatKeyValue(key, value string) string {
	return "**" + key + "**: " + value
}

package common

// TruncateName truncates a label to maxLen runes, ending with an ellipsis.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if maxLen > 0 && len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

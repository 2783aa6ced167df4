package synthesizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitText cuts text into chunks of at most maxLen runes, breaking after
// sentence punctuation or whitespace when possible.
func splitText(text string, maxLen int) []string {
	text = strings.Join(strings.Fields(text), " ")
	var chunks []string

	for utf8.RuneCountInString(text) > maxLen {
		runes := []rune(text)
		cut := lastBreak(runes[:maxLen+1])
		if cut <= 0 {
			cut = maxLen
		}

		chunk := strings.TrimSpace(string(runes[:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		text = strings.TrimSpace(string(runes[cut:]))
	}

	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

// lastBreak returns the index just past the last punctuation mark, else the last space.
func lastBreak(runes []rune) int {
	for i := len(runes) - 1; i > 0; i-- {
		if strings.ContainsRune(".!?;:,", runes[i-1]) && unicode.IsSpace(runes[i]) {
			return i
		}
	}
	for i := len(runes) - 1; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return 0
}

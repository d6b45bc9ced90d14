package embed

import (
	"strings"
	"unicode/utf8"
)

const (
	KeyCategory       = "category"
	KeyDownloadStatus = "download status"
	KeyStatus         = "status"
)

var extractableKeys = map[string]struct{}{
	KeyCategory:       {},
	KeyDownloadStatus: {},
	KeyStatus:         {},
}

// ExtractFields lifts "key: value" lines with a recognized key out of
// message. Keys match case-insensitively after trimming; only the first
// colon on a line separates key from value, and a later line with the same
// key overwrites an earlier one. The remaining lines are rejoined and
// trimmed to form the cleaned description.
func ExtractFields(message string) (string, map[string]string) {
	fields := make(map[string]string)
	lines := splitLines(message)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if key, value, ok := strings.Cut(line, ":"); ok {
			key = strings.ToLower(strings.TrimSpace(key))
			if _, match := extractableKeys[key]; match {
				fields[key] = strings.TrimSpace(value)
				continue
			}
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n")), fields
}

// splitLines breaks text on every line boundary SABnzbd messages may carry,
// including \r\n, lone \r, and the Unicode line and paragraph separators.
// Boundaries are dropped and a trailing boundary does not yield an empty
// final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := decodeRune(text, i)
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func decodeRune(s string, i int) (rune, int) {
	if c := s[i]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s[i:])
}

package textutil

import "strings"

// SplitURLs flattens SABnzbd URL arguments. Each argument may carry several
// comma-joined URLs; entries are trimmed and blanks dropped, preserving order.
func SplitURLs(args []string) []string {
	var urls []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				urls = append(urls, part)
			}
		}
	}
	return urls
}

// Truncate shortens s to at most limit runes, marking the cut with "…".
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

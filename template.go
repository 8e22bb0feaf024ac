package prthrottler

import (
	"regexp"
	"strconv"
)

var templateToken = regexp.MustCompile(`\{[a-zA-Z]+\}`)

// renderComment substitutes the closed set of {token} placeholders in a
// comment template. Unknown tokens render as the empty string; there is no
// recursion or escaping.
func renderComment(tmpl, author string, openCount, allowedOpen, mergedCount int) string {
	values := map[string]string{
		"{author}":      author,
		"{openCount}":   strconv.Itoa(openCount),
		"{allowedOpen}": strconv.Itoa(allowedOpen),
		"{mergedCount}": strconv.Itoa(mergedCount),
	}
	return templateToken.ReplaceAllStringFunc(tmpl, func(token string) string {
		return values[token]
	})
}

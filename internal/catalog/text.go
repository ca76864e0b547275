package catalog

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	blockBreak = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</li>|</tr>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
	strict     = bluemonday.StrictPolicy()
)

// PlainText renders the explanation for terminals and Markdown: block-level
// breaks become newlines and all markup is stripped.
func (e Explanation) PlainText() string {
	s := blockBreak.ReplaceAllString(e.HTML, "$0\n")
	s = html.UnescapeString(strict.Sanitize(s))
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

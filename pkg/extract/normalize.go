package extract

import (
	"regexp"
	"strings"
)

var (
	fencePair     = regexp.MustCompile("(?s)```[\\w+.-]*[ \\t]*\\n?(.*?)\\s*```")
	leadingFence  = regexp.MustCompile("^```[\\w+.-]*[ \\t]*\\n?")
	trailingFence = regexp.MustCompile("\\s*```$")
	blankRun      = regexp.MustCompile(`\n{3,}`)
	boldPair      = regexp.MustCompile(`(?s)\*\*(.*?)\*\*`)
)

// Normalize applies the cleanup shared by every mode: fence markers are
// removed around the payload, runs of blank lines collapse to one blank
// line and bold markers are dropped while keeping the enclosed text.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = fencePair.ReplaceAllString(text, "$1")
	// A reply cut off mid-payload can keep only one of its fences.
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")

	text = blankRun.ReplaceAllString(text, "\n\n")
	text = boldPair.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text)
}

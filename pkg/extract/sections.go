package extract

import (
	"fmt"
	"strings"
)

// locator finds label occurrences in normalized text. An occurrence that
// sits inside an occurrence of a longer requested label does not count, so
// "CORRECT ANSWERS:" is never found inside "INCORRECT ANSWERS:".
type locator struct {
	text   string
	labels []string
}

func newLocator(text string, sections []Section) locator {
	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Label != "" {
			labels = append(labels, s.Label)
		}
	}
	return locator{text: text, labels: labels}
}

// index returns the first occurrence of label at or after from, or -1.
func (l locator) index(label string, from int) int {
	if label == "" {
		return -1
	}
	for from <= len(l.text) {
		i := strings.Index(l.text[from:], label)
		if i < 0 {
			return -1
		}
		pos := from + i
		if !l.shadowed(label, pos) {
			return pos
		}
		from = pos + 1
	}
	return -1
}

func (l locator) shadowed(label string, pos int) bool {
	for _, other := range l.labels {
		if len(other) <= len(label) {
			continue
		}
		for off := 0; off+len(label) <= len(other); off++ {
			if !strings.HasPrefix(other[off:], label) {
				continue
			}
			start := pos - off
			if start >= 0 && strings.HasPrefix(l.text[start:], other) {
				return true
			}
		}
	}
	return false
}

// beforeField runs at the start of every field lookup. Tests replace it.
var beforeField = func(Section) {}

// field isolates the content of one section. The content ends where the
// nearest requested label (its own included) starts, or at end of text.
func (l locator) field(s Section) (value string, found bool) {
	defer func() {
		if r := recover(); r != nil {
			value = fmt.Sprintf("Error extracting %s: %v", s.Field, r)
			found = false
		}
	}()

	beforeField(s)
	start := l.index(s.Label, 0)
	if start < 0 {
		return NotProvided, false
	}
	contentStart := start + len(s.Label)

	end := len(l.text)
	for _, label := range l.labels {
		if next := l.index(label, contentStart); next >= 0 && next < end {
			end = next
		}
	}

	return strings.TrimSpace(l.text[contentStart:end]), true
}

func extractSections(text string, sections []Section) *Result {
	loc := newLocator(text, sections)

	res := &Result{
		Mode:    DelimitedSections,
		Fields:  make(map[string]string, len(sections)),
		Success: true,
	}
	for _, s := range sections {
		value, found := loc.field(s)
		res.Fields[s.Field] = value
		if !found {
			res.Missing = append(res.Missing, s.Field)
		}
	}

	return res
}

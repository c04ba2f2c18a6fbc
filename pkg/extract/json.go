package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// numberedMarker matches "1. ", "12.\n" and the like. A match only counts at
// the start of the text or right after whitespace, checked in numberedItems
// so adjacent markers do not compete for the same space.
var numberedMarker = regexp.MustCompile(`\d+\.\s+`)

// bracketed trims everything before the first open byte and after the last
// close byte.
func bracketed(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func extractArray(text string) *Result {
	res := &Result{Mode: JSONArray, Success: true}

	if payload, ok := bracketed(text, '[', ']'); ok {
		var items []string
		if err := json.Unmarshal([]byte(payload), &items); err == nil {
			if items == nil {
				items = []string{}
			}
			res.Items = items
			return res
		}
	}

	res.FallbackUsed = true
	if items := numberedItems(text); len(items) > 0 {
		res.Items = items
		return res
	}

	// Never lose the reply: storage always receives a parseable array.
	res.Items = []string{text}
	return res
}

func numberedItems(text string) []string {
	var marks [][]int
	for _, m := range numberedMarker.FindAllStringIndex(text, -1) {
		if m[0] == 0 || isSpace(text[m[0]-1]) {
			marks = append(marks, m)
		}
	}
	items := make([]string, 0, len(marks))
	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		if item := strings.TrimSpace(text[m[1]:end]); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func extractObject(text string) *Result {
	res := &Result{Mode: JSONObject}

	payload, ok := bracketed(text, '{', '}')
	if !ok {
		return res
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(payload), &obj); err != nil || obj == nil {
		return res
	}

	res.Object = obj
	res.Success = true
	return res
}

// Package extract turns free-text replies from a generative model into
// structured values. It tolerates fenced payloads, prose around JSON,
// numbered lists where JSON was requested and missing report sections.
//
// Extract is a pure function: it holds no state, performs no I/O and may be
// called concurrently without synchronization.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mode selects how the normalized reply is interpreted.
type Mode int

const (
	DelimitedSections Mode = iota
	JSONArray
	JSONObject
)

func (m Mode) String() string {
	switch m {
	case DelimitedSections:
		return "sections"
	case JSONArray:
		return "array"
	case JSONObject:
		return "object"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sections", "delimited", "delimited-sections":
		return DelimitedSections, nil
	case "array", "json-array":
		return JSONArray, nil
	case "object", "json-object":
		return JSONObject, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrUsage, s)
}

// NotProvided is stored for a section whose label does not occur in the reply.
const NotProvided = "Not provided"

// ErrUsage reports a call that cannot be satisfied whatever the input text,
// such as DelimitedSections without any section.
var ErrUsage = errors.New("extract: invalid usage")

// Section maps a result field to the label that introduces it in the reply.
type Section struct {
	Field string
	Label string
}

type Request struct {
	Text     string
	Mode     Mode
	Sections []Section
}

// Result is built once per call and never mutated by this package afterwards.
type Result struct {
	Mode Mode

	// Fields is set in DelimitedSections mode. Its keys are always a subset
	// of the requested section fields.
	Fields map[string]string
	// Items is set in JSONArray mode.
	Items []string
	// Object is set in JSONObject mode when the reply parsed.
	Object map[string]any

	Success      bool
	FallbackUsed bool

	// Missing lists the section fields that hold a sentinel instead of
	// extracted content.
	Missing []string
}

// Extract normalizes req.Text and parses it according to req.Mode.
// Malformed text never yields an error; it degrades to a fallback that is
// reported through Result.FallbackUsed, Result.Success or Result.Missing.
func Extract(req Request) (*Result, error) {
	switch req.Mode {
	case DelimitedSections:
		if len(req.Sections) == 0 {
			return nil, fmt.Errorf("%w: delimited sections need at least one section", ErrUsage)
		}
		return extractSections(Normalize(req.Text), req.Sections), nil
	case JSONArray:
		return extractArray(Normalize(req.Text)), nil
	case JSONObject:
		return extractObject(Normalize(req.Text)), nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrUsage, int(req.Mode))
	}
}

// ItemsJSON serializes Items as a JSON array string for storage.
func (r *Result) ItemsJSON() (string, error) {
	items := r.Items
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal items: %w", err)
	}
	return string(b), nil
}

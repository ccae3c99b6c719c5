// Package extract locates the answer text inside an arbitrary SUT response.
//
// Systems under test are unversioned and their response shapes are unknown,
// so extraction is a heuristic: probe an ordered list of common field names
// and fall back to the serialized payload when nothing matches.
package extract

import "encoding/json"

// answerFields is the ordered priority list of field names probed for a
// string answer. Order matters: the first string-valued match wins.
var answerFields = []string{
	"response",
	"answer",
	"text",
	"content",
	"message",
	"output",
	"result",
	"reply",
	"data",
}

// Extract returns the best candidate answer text for a raw SUT response
// body. Bodies that do not parse as JSON are returned verbatim as strings.
func Extract(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return FromValue(v)
}

// FromValue extracts the answer text from an already-decoded JSON value.
// It is a total function: when no recognized field carries a string at any
// nesting level, the entire original value is serialized back to JSON and
// returned as a low-confidence extraction.
func FromValue(v any) string {
	if s, ok := fromValue(v); ok {
		return s
	}
	return serialize(v)
}

func fromValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case map[string]any:
		if s, ok := probeFields(val); ok {
			return s, true
		}
		// A "data" wrapper object gets one more chance per nesting level.
		if inner, ok := val["data"].(map[string]any); ok {
			return fromValue(inner)
		}
	}
	return "", false
}

// probeFields checks the recognized field names in priority order and
// returns the first string value found.
func probeFields(obj map[string]any) (string, bool) {
	for _, field := range answerFields {
		if s, ok := obj[field].(string); ok {
			return s, true
		}
	}
	return "", false
}

func serialize(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Values decoded from JSON always re-marshal; this path only
		// exists for callers handing in non-JSON-representable values.
		return ""
	}
	return string(data)
}

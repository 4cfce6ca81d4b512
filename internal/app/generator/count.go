package generator

import (
	"bytes"
	"encoding/json"
)

// CountItems returns the length of the first array-valued property of the
// JSON object raw, in document order. It returns 0 when raw is not an object
// or has no array property. Categories that persist nothing are still
// counted this way for progress reporting.
func CountItems(raw json.RawMessage) int {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return 0
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return 0
	}

	for dec.More() {
		if _, err := dec.Token(); err != nil { // key
			return 0
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return 0
		}
		value = bytes.TrimSpace(value)
		if len(value) == 0 || value[0] != '[' {
			continue
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(value, &elems); err != nil {
			return 0
		}
		return len(elems)
	}
	return 0
}

package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// JSONObject validates that s is a single JSON object and returns it.
func JSONObject(providerName, s string) (json.RawMessage, error) {
	b := bytes.TrimSpace([]byte(s))
	if len(b) == 0 {
		return nil, Malformed(providerName, errors.New("empty content"))
	}
	if b[0] != '{' {
		return nil, Malformed(providerName, errors.New("content is not a JSON object"))
	}
	if !json.Valid(b) {
		return nil, Malformed(providerName, errors.New("content is not valid JSON"))
	}
	return json.RawMessage(b), nil
}

// ExtractJSONObject returns the text between the first '{' and the last '}'
// of s, validated as a JSON object. Chat models often wrap the object in
// prose or markdown fences.
func ExtractJSONObject(providerName, s string) (json.RawMessage, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil, Malformed(providerName, errors.New("no JSON object found in response"))
	}
	return JSONObject(providerName, s[start:end+1])
}

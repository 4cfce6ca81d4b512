package generator

import (
	"encoding/json"
	"testing"
)

func TestCountItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"single array", `{"idioms":[{},{},{}]}`, 3},
		{"first array wins", `{"meta":{"x":[1,2,3,4]},"title":"t","items":[1,2],"more":[1,2,3]}`, 2},
		{"empty array", `{"vocabulary":[]}`, 0},
		{"no array", `{"a":1,"b":"two"}`, 0},
		{"not an object", `[1,2,3]`, 0},
		{"invalid json", `{"a":[1,2`, 0},
		{"empty", ``, 0},
		{"unmapped category", `{"dialogues":[{"id":"DLG-1"},{"id":"DLG-2"}]}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountItems(json.RawMessage(tt.raw)); got != tt.want {
				t.Errorf("CountItems(%s) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

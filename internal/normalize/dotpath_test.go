package normalize

import "testing"

func TestPathNumber(t *testing.T) {
	payload := map[string]any{
		"stats": map[string]any{
			"kills": map[string]any{"value": 120.0},
			"flat":  7,
		},
		"scalar": "not a map",
	}

	tests := []struct {
		name string
		path string
		want float64
	}{
		{"nested value", "stats.kills.value", 120},
		{"missing leaf", "stats.kills.displayValue", 0},
		{"missing intermediate", "stats.deaths.value", 0},
		{"non-map intermediate", "scalar.value", 0},
		{"int leaf", "stats.flat", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathNumber(payload, tt.path); got != tt.want {
				t.Errorf("pathNumber(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	payload := map[string]any{
		"metadata": map[string]any{"name": "M4", "count": 3.0},
	}
	if got := pathString(payload, "metadata.name", "--"); got != "M4" {
		t.Errorf("got %q", got)
	}
	if got := pathString(payload, "metadata.count", "--"); got != "3" {
		t.Errorf("numeric leaf: got %q", got)
	}
	if got := pathString(payload, "metadata.missing", "--"); got != "--" {
		t.Errorf("default: got %q", got)
	}
	if got := pathString(nil, "anything", "--"); got != "--" {
		t.Errorf("nil map: got %q", got)
	}
}

func TestToStringNumericForms(t *testing.T) {
	if got := toString(2.5, ""); got != "2.5" {
		t.Errorf("float: got %q", got)
	}
	if got := toString(nil, "--"); got != "--" {
		t.Errorf("nil: got %q", got)
	}
	if got := toString([]any{1}, "--"); got != "--" {
		t.Errorf("slice: got %q", got)
	}
}

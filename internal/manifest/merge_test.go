package manifest

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    map[string]any
		overlay map[string]any
		want    map[string]any
	}{
		{
			name:    "empty base",
			base:    map[string]any{},
			overlay: map[string]any{"name": "app"},
			want:    map[string]any{"name": "app"},
		},
		{
			name:    "nil base",
			base:    nil,
			overlay: map[string]any{"name": "app"},
			want:    map[string]any{"name": "app"},
		},
		{
			name:    "overlay wins on scalars",
			base:    map[string]any{"name": "old", "license": "MIT"},
			overlay: map[string]any{"name": "new"},
			want:    map[string]any{"name": "new", "license": "MIT"},
		},
		{
			name: "nested objects merge",
			base: map[string]any{
				"scripts": map[string]any{"test": "x", "dev": "old"},
			},
			overlay: map[string]any{
				"scripts": map[string]any{"dev": "vite", "build": "vite build"},
			},
			want: map[string]any{
				"scripts": map[string]any{"test": "x", "dev": "vite", "build": "vite build"},
			},
		},
		{
			name:    "object replaces scalar",
			base:    map[string]any{"scripts": "broken"},
			overlay: map[string]any{"scripts": map[string]any{"dev": "vite"}},
			want:    map[string]any{"scripts": map[string]any{"dev": "vite"}},
		},
		{
			name:    "scalar replaces object",
			base:    map[string]any{"prettier": map[string]any{"semi": false}},
			overlay: map[string]any{"prettier": "@shopify/prettier-config"},
			want:    map[string]any{"prettier": "@shopify/prettier-config"},
		},
		{
			name:    "arrays are replaced",
			base:    map[string]any{"files": []any{"a", "b"}},
			overlay: map[string]any{"files": []any{"c"}},
			want:    map[string]any{"files": []any{"c"}},
		},
		{
			name: "deeply nested",
			base: map[string]any{
				"a": map[string]any{"b": map[string]any{"c": 1, "d": 2}},
			},
			overlay: map[string]any{
				"a": map[string]any{"b": map[string]any{"c": 3}},
			},
			want: map[string]any{
				"a": map[string]any{"b": map[string]any{"c": 3, "d": 2}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.overlay)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	base := map[string]any{
		"scripts": map[string]any{"test": "x"},
	}
	overlay := map[string]any{
		"scripts": map[string]any{"dev": "vite"},
	}

	Merge(base, overlay)

	if scripts := base["scripts"].(map[string]any); len(scripts) != 1 {
		t.Errorf("base scripts modified: %v", scripts)
	}
	if scripts := overlay["scripts"].(map[string]any); len(scripts) != 1 {
		t.Errorf("overlay scripts modified: %v", scripts)
	}
}

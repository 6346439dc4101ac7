package manifest

// Merge returns a new object holding every key of base and overlay. When a key
// holds an object on both sides the two objects are merged recursively;
// otherwise the overlay value wins. Arrays are replaced, not concatenated.
// Neither input is modified.
func Merge(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if nested, ok := v.(map[string]any); ok {
			if existing, ok := out[k].(map[string]any); ok {
				out[k] = Merge(existing, nested)
				continue
			}
		}
		out[k] = v
	}
	return out
}

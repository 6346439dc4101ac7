package manifest

// FileName is the manifest file written at a workspace root.
const FileName = "package.json"

// Document is a decoded package.json object. Nested objects are
// map[string]any, numbers are json.Number.
type Document = map[string]any

// Package is the subset of package.json a workspace generates.
type Package struct {
	Name            string
	Scripts         map[string]string
	Dependencies    map[string]string
	DevDependencies map[string]string
	// Prettier names a shareable prettier config package. Omitted when empty.
	Prettier string
}

// Document converts p to a generic object suitable for Merge. Both dependency
// groups and scripts are always present, even when empty.
func (p *Package) Document() Document {
	doc := Document{
		"name":            p.Name,
		"scripts":         stringMap(p.Scripts),
		"dependencies":    stringMap(p.Dependencies),
		"devDependencies": stringMap(p.DevDependencies),
	}
	if p.Prettier != "" {
		doc["prettier"] = p.Prettier
	}
	return doc
}

func stringMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

package discovery

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/paygate-dev/paygate-host-sdk/manifest"
)

// manifestPattern matches one manifest per gateway bundle directory.
const manifestPattern = "*/gateway.{yaml,yml}"

// ScanManifests finds gateway manifests under root. Each immediate bundle
// directory may carry a gateway.yaml (or .yml). When several bundles declare
// the same gateway name, the highest semantic version wins.
func ScanManifests(root string) ([]*manifest.Manifest, error) {
	return ScanManifestsFS(os.DirFS(root))
}

// ScanManifestsFS is ScanManifests over an fs.FS, which keeps tests on an
// in-memory filesystem.
func ScanManifestsFS(fsys fs.FS) ([]*manifest.Manifest, error) {
	matches, err := doublestar.Glob(fsys, manifestPattern)
	if err != nil {
		return nil, fmt.Errorf("manifest scan failed: %w", err)
	}

	parser := manifest.NewYamlParser()

	byName := make(map[string][]*manifest.Manifest)
	var order []string
	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
		}
		m, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
		if _, seen := byName[m.Name]; !seen {
			order = append(order, m.Name)
		}
		byName[m.Name] = append(byName[m.Name], m)
	}

	out := make([]*manifest.Manifest, 0, len(order))
	for _, name := range order {
		candidates := byName[name]
		if len(candidates) == 1 {
			out = append(out, candidates[0])
			continue
		}

		available := make([]string, 0, len(candidates))
		for _, m := range candidates {
			available = append(available, m.Version)
		}
		winner, err := ResolveVersion("latest", available)
		if err != nil {
			return nil, fmt.Errorf("gateway %s: %w", name, err)
		}
		for _, m := range candidates {
			if m.Version == winner {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

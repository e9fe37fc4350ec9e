// Package index loads lite_index.yaml, the ordered mapping of leaderboard
// groups to the evaluation directory (tabName) and label (displayName) they use.
package index

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GroupSpec describes one leaderboard tab.
type GroupSpec struct {
	Key         string `yaml:"-"`
	TabName     string `yaml:"tabName"`
	DisplayName string `yaml:"displayName"`
}

// Index is the ordered set of groups, in document order.
type Index struct {
	groups []GroupSpec
	byKey  map[string]int
}

// ConfigError reports a missing or malformed index. It is fatal for a build.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("index %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads and parses the index at path.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	idx, err := Parse(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return idx, nil
}

// Parse decodes index YAML. Mapping order is preserved.
func Parse(data []byte) (*Index, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse index YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("index is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: index root must be a mapping", root.Line)
	}

	idx := &Index{
		groups: make([]GroupSpec, 0, len(root.Content)/2),
		byKey:  make(map[string]int, len(root.Content)/2),
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value

		if _, dup := idx.byKey[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate group %q", keyNode.Line, key)
		}
		if valNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: group %q must be a mapping", valNode.Line, key)
		}

		var spec GroupSpec
		if err := valNode.Decode(&spec); err != nil {
			return nil, fmt.Errorf("group %q: %w", key, err)
		}
		if spec.TabName == "" {
			return nil, fmt.Errorf("line %d: group %q is missing tabName", valNode.Line, key)
		}
		spec.Key = key

		idx.byKey[key] = len(idx.groups)
		idx.groups = append(idx.groups, spec)
	}

	return idx, nil
}

// Groups returns the group specs in document order.
func (idx *Index) Groups() []GroupSpec {
	out := make([]GroupSpec, len(idx.groups))
	copy(out, idx.groups)
	return out
}

// Lookup returns the group registered under key.
func (idx *Index) Lookup(key string) (GroupSpec, bool) {
	i, ok := idx.byKey[key]
	if !ok {
		return GroupSpec{}, false
	}
	return idx.groups[i], true
}

// Len returns the number of groups.
func (idx *Index) Len() int {
	return len(idx.groups)
}

package theme

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-imscope/imscope/pkg/im"
)

// fileTheme is the YAML shape of a theme file:
//
//	name: midnight
//	colors:
//	  WindowBg: "#1E1E2E"
//	  Text: "#CDD6F4FF"
//	vars:
//	  FrameRounding: 4
//	  WindowPadding: [10, 10]
type fileTheme struct {
	Name   string             `yaml:"name"`
	Colors map[string]string  `yaml:"colors"`
	Vars   map[string]varNode `yaml:"vars"`
}

// varNode accepts either a scalar or a two-element sequence.
type varNode struct {
	scalar float32
	vec    im.Vec2
	isVec  bool
}

func (v *varNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&v.scalar)
	case yaml.SequenceNode:
		var pair [2]float32
		if err := node.Decode(&pair); err != nil {
			return err
		}
		v.vec = im.Vec2(pair)
		v.isVec = true
		return nil
	default:
		return fmt.Errorf("style var value must be a number or a [x, y] pair")
	}
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return Parse(data)
}

// Parse builds a Theme from YAML. Color and var names follow the upstream
// enum suffixes ("WindowBg", "FrameRounding"); unknown names are errors.
// Entries within each section apply in name order so repeated loads behave
// identically.
func Parse(data []byte) (*Theme, error) {
	var f fileTheme
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	t := &Theme{Name: f.Name}

	for _, name := range sortedKeys(f.Colors) {
		target, ok := im.ColByName(name)
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown style color %q", f.Name, name)
		}
		value, err := im.ParseColor(f.Colors[name])
		if err != nil {
			return nil, fmt.Errorf("theme %q: color %s: %w", f.Name, name, err)
		}
		t.Colors = append(t.Colors, ColorEntry{Target: target, Value: value})
	}

	for _, name := range sortedKeys(f.Vars) {
		target, ok := im.StyleVarByName(name)
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown style var %q", f.Name, name)
		}
		node := f.Vars[name]
		t.Vars = append(t.Vars, VarEntry{
			Target: target,
			Float:  node.scalar,
			Vec:    node.vec,
			IsVec:  node.isVec,
		})
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package patch describes device tree edits as data and applies them to a
// parsed tree.
//
// A policy is a YAML document listing patches. Each patch anchors at a node
// path below the root and sets properties on that node or on nodes below
// it:
//
//	patches:
//	  - name: sdcard
//	    optional: true
//	    path: [sdhci@3440000]
//	    set:
//	      - property: status
//	        value: '"okay"'
//
// Values are written verbatim into the source, so strings keep their
// quotes. A set entry without a value produces a flag property.
package patch

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPolicy []byte

var (
	ErrNoPatches     = errors.New("patch: policy defines no patches")
	ErrEmptyPath     = errors.New("patch: empty node path")
	ErrEmptyProperty = errors.New("patch: empty property name")
	ErrEmptySegment  = errors.New("patch: empty node name in path")
)

// Policy is a parsed patch document.
type Policy struct {
	Patches []Patch `yaml:"patches" json:"patches"`
}

// Patch is a named group of edits anchored at one node.
type Patch struct {
	Name string `yaml:"name" json:"name"`

	// Optional patches are skipped when their anchor node is absent.
	Optional bool `yaml:"optional,omitempty" json:"optional,omitempty"`

	// Path lists node names from the root to the anchor.
	Path []string `yaml:"path" json:"path"`

	Set []Edit `yaml:"set" json:"set"`
}

// Edit assigns one property.
type Edit struct {
	// Node is a path relative to the patch anchor. Empty means the anchor.
	Node []string `yaml:"node,omitempty" json:"node,omitempty"`

	Property string  `yaml:"property" json:"property"`
	Value    *string `yaml:"value,omitempty" json:"value,omitempty"`

	// Create appends the property when it does not exist yet. Without it a
	// missing property is an error.
	Create bool `yaml:"create,omitempty" json:"create,omitempty"`
}

// Load reads and validates a policy file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a policy document. Unknown fields are
// rejected.
func Parse(data []byte) (*Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("patch: decode policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Default returns the built-in policy.
func Default() *Policy {
	p, err := Parse(defaultPolicy)
	if err != nil {
		panic(fmt.Sprintf("patch: built-in policy is invalid: %v", err))
	}
	return p
}

// DefaultYAML returns the built-in policy document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultPolicy))
	copy(out, defaultPolicy)
	return out
}

// Validate checks structural requirements.
func (p *Policy) Validate() error {
	if len(p.Patches) == 0 {
		return ErrNoPatches
	}
	for i, pt := range p.Patches {
		name := pt.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if len(pt.Path) == 0 {
			return fmt.Errorf("patch %s: %w", name, ErrEmptyPath)
		}
		if err := checkSegments(pt.Path); err != nil {
			return fmt.Errorf("patch %s: %w", name, err)
		}
		for j, e := range pt.Set {
			if e.Property == "" {
				return fmt.Errorf("patch %s: set[%d]: %w", name, j, ErrEmptyProperty)
			}
			if err := checkSegments(e.Node); err != nil {
				return fmt.Errorf("patch %s: set[%d]: %w", name, j, err)
			}
		}
	}
	return nil
}

func checkSegments(path []string) error {
	for _, s := range path {
		if strings.TrimSpace(s) == "" {
			return ErrEmptySegment
		}
	}
	return nil
}

// Package extlinux reads and extends the extlinux.conf boot menu used by
// U-Boot based boards.
//
// Only the directives needed to locate and clone a boot entry are
// interpreted; everything else in the file is left untouched.
package extlinux

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/dtskit/internal/textenc"
	"github.com/joshuapare/dtskit/pkg/types"
)

// Entry is one selectable boot configuration.
type Entry struct {
	Label     string `json:"label"`
	MenuLabel string `json:"menu_label"`
	Linux     string `json:"linux"`
	FDT       string `json:"fdt"`
	Initrd    string `json:"initrd"`
	Append    string `json:"append"`
}

// Config is the parsed boot menu.
type Config struct {
	Timeout   *int    `json:"timeout,omitempty"`
	Default   string  `json:"default"`
	MenuTitle string  `json:"menu_title"`
	Entries   []Entry `json:"entries"`
}

// Parse reads extlinux.conf content.
//
// Global directives (TIMEOUT, DEFAULT, MENU TITLE) must start the line.
// An entry starts at a line beginning with LABEL and runs until the next
// such line; within it, indented MENU LABEL, LINUX, FDT, INITRD and APPEND
// lines fill the entry. Later directives override earlier ones.
func Parse(data []byte) (*Config, error) {
	text, err := textenc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("extlinux: %w", err)
	}

	cfg := &Config{}
	var current *Entry

	for i, line := range textenc.SplitLines(text) {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}

		if v, ok := directive(line, KeyTimeout); ok {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, types.Malformed("extlinux: line %d: invalid %s %q", i+1, KeyTimeout, v)
			}
			cfg.Timeout = &n
			continue
		}
		if v, ok := directive(line, KeyDefault); ok {
			cfg.Default = v
			continue
		}
		if v, ok := directive(line, KeyMenuTitle); ok {
			cfg.MenuTitle = v
			continue
		}
		if v, ok := directive(line, KeyLabel); ok {
			cfg.Entries = append(cfg.Entries, Entry{Label: v})
			current = &cfg.Entries[len(cfg.Entries)-1]
			continue
		}

		if current == nil {
			continue
		}
		if v, ok := directive(trim, KeyMenuLabel); ok {
			current.MenuLabel = v
		} else if v, ok := directive(trim, KeyLinux); ok {
			current.Linux = v
		} else if v, ok := directive(trim, KeyFDT); ok {
			current.FDT = v
		} else if v, ok := directive(trim, KeyInitrd); ok {
			current.Initrd = v
		} else if v, ok := directive(trim, KeyAppend); ok {
			current.Append = v
		}
	}
	return cfg, nil
}

// directive matches key at the start of line, followed by whitespace or the
// end of the line, and returns the trimmed remainder.
func directive(line, key string) (string, bool) {
	if !strings.HasPrefix(line, key) {
		return "", false
	}
	rest := line[len(key):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// Entry returns the first entry with the given label.
func (c *Config) Entry(label string) (*Entry, bool) {
	for i := range c.Entries {
		if c.Entries[i].Label == label {
			return &c.Entries[i], true
		}
	}
	return nil, false
}

// DefaultEntry returns the entry named by DEFAULT.
func (c *Config) DefaultEntry() (*Entry, error) {
	if c.Default == "" {
		return nil, &types.Error{Kind: types.ErrKindState, Msg: "extlinux: no DEFAULT label configured"}
	}
	e, ok := c.Entry(c.Default)
	if !ok {
		return nil, types.NotFound("extlinux: default label %q has no entry", c.Default)
	}
	return e, nil
}

// Complete reports which fields are still missing. A complete entry has
// all six populated.
func (e *Entry) Complete() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{KeyLabel, e.Label},
		{KeyMenuLabel, e.MenuLabel},
		{KeyLinux, e.Linux},
		{KeyFDT, e.FDT},
		{KeyInitrd, e.Initrd},
		{KeyAppend, e.Append},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("extlinux: entry %q is missing %s", e.Label, strings.Join(missing, ", ")),
		}
	}
	return nil
}

package pattern

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownTemplate = errors.New("unknown template")

// Names of the built-in templates.
const (
	SimpleFlat   = "simple_flat"
	Flat         = "flat"
	Sequence     = "sequence"
	SequenceFlat = "sequence_flat"
	Default      = "default"
)

var builtinPresets = map[string]string{
	SimpleFlat:   `%title%`,
	Flat:         `%authors% - %title%`,
	Sequence:     `%seq_name%\%seq_number%. %title%`,
	SequenceFlat: `%seq_name% - %seq_number%. %title%`,
	Default:      `%authors% - %title%`,
}

// Presets maps template names to template strings.
type Presets map[string]string

// DefaultPresets returns a fresh copy of the built-in templates.
func DefaultPresets() Presets {
	p := make(Presets, len(builtinPresets))
	for k, v := range builtinPresets {
		p[k] = v
	}
	return p
}

// Merge adds or replaces templates from extra.
func (p Presets) Merge(extra map[string]string) {
	for k, v := range extra {
		p[k] = v
	}
}

// Lookup returns the template registered under name.
func (p Presets) Lookup(name string) (string, error) {
	t, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

// Names returns the template names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

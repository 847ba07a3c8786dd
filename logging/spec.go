package logging

import (
	"fmt"
	"strings"
)

// Spec describes a base log level plus per-component overrides.
type Spec struct {
	BaseLevel  Level
	Components map[string]Level
}

// ParseSpec parses a log spec string of the form
// "level[,component=level...]", e.g. "info,monitor=debug". The empty
// spec yields the info level with no overrides.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{
		BaseLevel:  LevelInfo,
		Components: make(map[string]Level),
	}
	if strings.TrimSpace(s) == "" {
		return spec, nil
	}

	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		component, levelStr, found := strings.Cut(part, "=")
		if !found {
			if i != 0 {
				return Spec{}, fmt.Errorf("bare level %q must come first in spec", part)
			}
			level, err := ParseLevel(part)
			if err != nil {
				return Spec{}, err
			}
			spec.BaseLevel = level
			continue
		}
		component = strings.TrimSpace(component)
		if component == "" {
			return Spec{}, fmt.Errorf("empty component in spec entry %q", part)
		}
		level, err := ParseLevel(levelStr)
		if err != nil {
			return Spec{}, err
		}
		spec.Components[component] = level
	}
	return spec, nil
}

// LevelFor returns the effective level for a component: its override
// if one exists, the base level otherwise.
func (s *Spec) LevelFor(component string) Level {
	if level, ok := s.Components[component]; ok {
		return level
	}
	return s.BaseLevel
}

package windgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Theme is the resolved design-token registry: a set of named token values
// grouped by semantic category (colors, spacing, breakpoints, ...).
//
// A Theme is built once per generation run by merging user overrides over
// the built-in defaults and is read-only afterwards, which makes concurrent
// lookups safe without locking.
type Theme struct {
	categories map[string]map[string]string
}

// ThemeSpec carries user token overrides from configuration.
//
// Replace swaps out a whole category; Extend deep-merges individual keys
// into a category with user values taking precedence. The distinction
// mirrors the reserved "extend" sub-key in the YAML config.
type ThemeSpec struct {
	Replace map[string]map[string]string
	Extend  map[string]map[string]string
}

// buildTheme merges a ThemeSpec over the default scale. It is a pure
// function: the default tables are never mutated.
func buildTheme(spec ThemeSpec) *Theme {
	cats := make(map[string]map[string]string, len(defaultTheme))
	for name, tokens := range defaultTheme {
		cats[name] = cloneTokens(tokens)
	}
	for name, tokens := range spec.Replace {
		cats[name] = cloneTokens(tokens)
	}
	for name, tokens := range spec.Extend {
		dst := cats[name]
		if dst == nil {
			dst = make(map[string]string, len(tokens))
			cats[name] = dst
		}
		for k, v := range tokens {
			dst[k] = v
		}
	}

	// The sizing scale tracks spacing plus a few keywords, so user spacing
	// overrides flow into w-*/h-* as well.
	sizing := cloneTokens(cats["spacing"])
	for k, v := range sizingExtras {
		if _, exists := sizing[k]; !exists {
			sizing[k] = v
		}
	}
	cats["sizing"] = sizing

	return &Theme{categories: cats}
}

func cloneTokens(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Resolve looks up a token value. The returned error wraps ErrUnknownToken
// when either the category or the key does not exist.
func (t *Theme) Resolve(category, key string) (string, error) {
	tokens, ok := t.categories[category]
	if !ok {
		return "", fmt.Errorf("%s.%s: %w", category, key, ErrUnknownToken)
	}
	v, ok := tokens[key]
	if !ok {
		return "", fmt.Errorf("%s.%s: %w", category, key, ErrUnknownToken)
	}
	return v, nil
}

// Has reports whether a category exists in the theme.
func (t *Theme) Has(category string) bool {
	_, ok := t.categories[category]
	return ok
}

// Category returns a copy of a token category. Plugins use this to enumerate
// a scale at install time (e.g. registering one static utility per font size).
func (t *Theme) Category(name string) map[string]string {
	return cloneTokens(t.categories[name])
}

// SortedKeys returns a category's keys in deterministic order. Keys that
// parse as numbers sort numerically so the spacing scale reads 0,1,2,...,10
// rather than lexically.
func (t *Theme) SortedKeys(category string) []string {
	tokens := t.categories[category]
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.ParseFloat(keys[i], 64)
		b, berr := strconv.ParseFloat(keys[j], 64)
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// breakpointsInOrder returns breakpoint names sorted by their pixel value so
// responsive variants register smallest-first regardless of map order.
func (t *Theme) breakpointsInOrder() []string {
	tokens := t.categories["breakpoints"]
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := breakpointPx(tokens[names[i]]), breakpointPx(tokens[names[j]])
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}

func breakpointPx(v string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0
	}
	return n
}

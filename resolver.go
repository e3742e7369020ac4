package windgen

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// resolverCacheSize bounds the candidate memo cache. Resolution is a pure
// function of (candidate, sealed registry), so memoized results stay valid
// for the engine's lifetime.
const resolverCacheSize = 8192

// Resolver turns scanned candidate strings into resolved rules. It is safe
// for concurrent use once the registry is sealed.
type Resolver struct {
	reg   *Registry
	cache *lru.Cache[string, []Rule]
	log   *zap.Logger
}

// NewResolver creates a resolver over a sealed registry.
func NewResolver(reg *Registry, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	cache, _ := lru.New[string, []Rule](resolverCacheSize)
	return &Resolver{reg: reg, cache: cache, log: log.Named("resolver")}
}

// Resolve maps one candidate to its rules, or nil when the candidate is
// rejected: unknown variant, unknown utility, scale miss, malformed
// arbitrary value, or generator non-match. Rejection is silent; most
// scanned strings are not utility classes at all.
//
// Callers must not mutate the returned rules; they may be shared with the
// memo cache.
func (r *Resolver) Resolve(raw string) []Rule {
	if rules, ok := r.cache.Get(raw); ok {
		return rules
	}
	rules := r.resolve(raw)
	r.cache.Add(raw, rules)
	return rules
}

func (r *Resolver) resolve(raw string) []Rule {
	c, ok := parseCandidate(raw)
	if !ok {
		return nil
	}

	// Fail closed on any unknown variant: a misspelled variant silently
	// producing an unvarianted rule would be worse than omitting it.
	for _, name := range c.variants {
		if _, ok := r.reg.variant(name); !ok {
			return nil
		}
	}

	u, v, ok := r.lookupBase(c)
	if !ok {
		return nil
	}

	selector := "." + escapeClassName(raw)

	if u.component != nil {
		return r.resolveComponent(c, u, v, selector)
	}

	decls, ok := u.generate(v)
	if !ok || len(decls) == 0 {
		return nil
	}
	if c.important {
		// Copy before flagging: static generators hand out a shared slice.
		flagged := make([]Declaration, len(decls))
		copy(flagged, decls)
		for i := range flagged {
			flagged[i].Important = true
		}
		decls = flagged
	}

	sc, ok := r.applyVariants(c.variants, SelectorContext{Selector: selector})
	if !ok {
		return nil
	}
	return []Rule{{
		Selector:     sc.Selector,
		AtRules:      sc.AtRules,
		Declarations: decls,
		Layer:        LayerUtilities,
	}}
}

func (r *Resolver) lookupBase(c candidate) (utility, Value, bool) {
	if c.arbitrary {
		return r.reg.lookupArbitrary(c.base, c.value, c.negative)
	}
	return r.reg.lookup(c.base, c.negative)
}

func (r *Resolver) resolveComponent(c candidate, u utility, v Value, selector string) []Rule {
	rules := u.component(v)
	if len(rules) == 0 {
		return nil
	}
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		sel := rule.Selector
		if sel == "" {
			sel = selector
		}
		sc, ok := r.applyVariants(c.variants, SelectorContext{Selector: sel, AtRules: rule.AtRules})
		if !ok {
			return nil
		}
		decls := rule.Declarations
		if c.important {
			decls = make([]Declaration, len(rule.Declarations))
			copy(decls, rule.Declarations)
			for i := range decls {
				decls[i].Important = true
			}
		}
		out = append(out, Rule{
			Selector:     sc.Selector,
			AtRules:      sc.AtRules,
			Declarations: decls,
			Layer:        LayerComponents,
		})
	}
	return out
}

// applyVariants wraps a selector context with each variant, innermost
// (rightmost prefix) first, so the leftmost variant ends up outermost.
func (r *Resolver) applyVariants(variants []string, sc SelectorContext) (SelectorContext, bool) {
	for i := len(variants) - 1; i >= 0; i-- {
		fn, ok := r.reg.variant(variants[i])
		if !ok {
			return sc, false
		}
		sc, ok = fn(sc)
		if !ok {
			return sc, false
		}
	}
	return sc, true
}

// candidate is the structural decomposition of a scanned string.
type candidate struct {
	variants  []string // outer-to-inner variant prefixes
	base      string   // utility name, or name part for arbitrary values
	value     string   // raw bracket content for arbitrary values
	arbitrary bool
	negative  bool
	important bool
}

// parseCandidate decomposes a raw candidate string. It returns ok=false for
// strings that are structurally not class-shaped (empty segments, stray
// brackets, trailing separators).
func parseCandidate(raw string) (candidate, bool) {
	var c candidate

	segments, ok := splitVariants(raw)
	if !ok || len(segments) == 0 {
		return c, false
	}
	c.variants = segments[:len(segments)-1]
	base := segments[len(segments)-1]

	for _, v := range c.variants {
		if v == "" {
			return c, false
		}
	}

	// Trailing important marker belongs to the base token.
	if strings.HasSuffix(base, "!") {
		c.important = true
		base = strings.TrimSuffix(base, "!")
	}

	if strings.HasPrefix(base, "-") {
		c.negative = true
		base = base[1:]
	}
	if base == "" {
		return c, false
	}

	if idx := strings.IndexByte(base, '['); idx >= 0 {
		if !strings.HasSuffix(base, "]") || idx == 0 {
			return c, false
		}
		name := strings.TrimSuffix(base[:idx], "-")
		value := base[idx+1 : len(base)-1]
		if name == "" || value == "" || strings.ContainsAny(value, "[]") {
			return c, false
		}
		c.base = name
		c.value = value
		c.arbitrary = true
		return c, true
	}
	if strings.ContainsRune(base, ']') {
		return c, false
	}

	c.base = base
	return c, true
}

// splitVariants splits on the variant separator, ignoring colons inside
// arbitrary-value brackets (e.g. bg-[url(https://...)]). Unbalanced
// brackets reject the candidate.
func splitVariants(raw string) ([]string, bool) {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, false
			}
		case ':':
			if depth == 0 {
				segments = append(segments, raw[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, false
	}
	return append(segments, raw[start:]), true
}

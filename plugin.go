package windgen

import (
	"fmt"

	"go.uber.org/zap"
)

// GeneratorFunc maps a (possibly absent) utility value to declarations.
// Returning ok=false means "no match": the candidate is dropped silently,
// since scanned tokens are not a guaranteed-valid vocabulary.
type GeneratorFunc func(v Value) ([]Declaration, bool)

// ComponentFunc produces one or more component-layer rules for a utility
// name. Used for utilities like container whose output is not a single
// flat declaration list.
type ComponentFunc func(v Value) []Rule

// VariantFunc rewrites a selector context: a state variant appends a
// pseudo-class, a responsive variant wraps the rule in an at-rule.
// Returning ok=false rejects the candidate.
type VariantFunc func(sc SelectorContext) (SelectorContext, bool)

// SelectorContext is the selector plus its at-rule wrappers, outermost first.
type SelectorContext struct {
	Selector string
	AtRules  []string
}

// Value is the resolved value handed to a generator.
type Value struct {
	Raw       string // value segment as written ("4", "100px", "blue-500")
	Resolved  string // concrete CSS value after scale lookup or arbitrary parse
	Present   bool   // false for bare utilities like "flex"
	Arbitrary bool   // true when the value came from bracket syntax
	Negative  bool   // true when the candidate carried a leading "-"
}

// Plugin registers utilities, variants, component rules, and base rules
// against a registry during a single-threaded initialization pass.
type Plugin interface {
	Name() string
	Install(api PluginAPI) error
}

// PluginAPI is the handle plugins receive during Install. It exposes token
// lookup plus the registration surface; it must not be retained or used
// after Install returns.
type PluginAPI interface {
	// Resolve looks up a design token by category and key.
	Resolve(category, key string) (string, error)

	// Theme gives read-only access to the merged token scale, for plugins
	// that enumerate a category at install time.
	Theme() *Theme

	// Register binds a utility name to a generator. tokenCategory names the
	// theme category used to resolve the candidate's value segment; an empty
	// category makes the utility static (bare name only, no value segment).
	Register(name, tokenCategory string, fn GeneratorFunc)

	// RegisterComponent binds a utility name to a component rule producer.
	RegisterComponent(name string, fn ComponentFunc)

	// RegisterVariant binds a variant prefix to a selector transformation.
	RegisterVariant(name string, fn VariantFunc)

	// AddBase adds an unconditional base-layer rule, emitted ahead of all
	// component and utility rules.
	AddBase(selector string, decls ...Declaration)
}

type utility struct {
	name      string
	category  string
	generate  GeneratorFunc
	component ComponentFunc
	plugin    string
}

// Registry holds everything plugins registered. Mutated only during the
// install pass; read-only (and therefore freely shared) afterwards.
type Registry struct {
	theme     *Theme
	log       *zap.Logger
	utilities map[string]utility
	variants  map[string]VariantFunc
	baseRules []Rule

	installing string // plugin currently installing, for override logging
	sealed     bool
}

func newRegistry(theme *Theme, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		theme:     theme,
		log:       log.Named("registry"),
		utilities: make(map[string]utility),
		variants:  make(map[string]VariantFunc),
	}
}

// install runs each plugin's registration pass in configured order.
func (r *Registry) install(plugins []Plugin) error {
	for _, p := range plugins {
		r.installing = p.Name()
		if err := p.Install(r); err != nil {
			return &ConfigError{Err: fmt.Errorf("plugin %s: %w", p.Name(), err)}
		}
	}
	r.installing = ""
	r.sealed = true
	return nil
}

func (r *Registry) Resolve(category, key string) (string, error) {
	return r.theme.Resolve(category, key)
}

func (r *Registry) Theme() *Theme { return r.theme }

func (r *Registry) Register(name, tokenCategory string, fn GeneratorFunc) {
	if prev, ok := r.utilities[name]; ok {
		r.log.Warn("utility overridden",
			zap.String("utility", name),
			zap.String("previous", prev.plugin),
			zap.String("by", r.installing))
	}
	r.utilities[name] = utility{
		name:     name,
		category: tokenCategory,
		generate: fn,
		plugin:   r.installing,
	}
}

func (r *Registry) RegisterComponent(name string, fn ComponentFunc) {
	if prev, ok := r.utilities[name]; ok {
		r.log.Warn("utility overridden",
			zap.String("utility", name),
			zap.String("previous", prev.plugin),
			zap.String("by", r.installing))
	}
	r.utilities[name] = utility{
		name:      name,
		component: fn,
		plugin:    r.installing,
	}
}

func (r *Registry) RegisterVariant(name string, fn VariantFunc) {
	if _, ok := r.variants[name]; ok {
		r.log.Warn("variant overridden",
			zap.String("variant", name),
			zap.String("by", r.installing))
	}
	r.variants[name] = fn
}

func (r *Registry) AddBase(selector string, decls ...Declaration) {
	r.baseRules = append(r.baseRules, Rule{
		Selector:     selector,
		Declarations: decls,
		Layer:        LayerBase,
		order:        len(r.baseRules),
	})
}

func (r *Registry) variant(name string) (VariantFunc, bool) {
	fn, ok := r.variants[name]
	return fn, ok
}

// lookup finds the utility matching a base token (variant prefixes already
// stripped) and resolves its value segment.
//
// Match order: exact name first (static utilities), then the longest
// registered prefix followed by "-value". A scale-lookup miss invalidates
// the whole candidate.
func (r *Registry) lookup(base string, negative bool) (utility, Value, bool) {
	// Arbitrary values are handled by the caller; base here never contains
	// brackets.
	if u, ok := r.utilities[base]; ok {
		v := Value{Present: false, Negative: negative}
		// Bare utilities over a scale fall back to the scale's DEFAULT key
		// when one exists (e.g. "rounded", "shadow").
		if u.category != "" {
			if resolved, err := r.theme.Resolve(u.category, "DEFAULT"); err == nil {
				v = Value{Raw: "DEFAULT", Resolved: resolved, Present: true, Negative: negative}
			}
		}
		return u, v, true
	}

	for i := len(base) - 1; i > 0; i-- {
		if base[i] != '-' {
			continue
		}
		u, ok := r.utilities[base[:i]]
		if !ok || u.category == "" {
			continue
		}
		raw := base[i+1:]
		resolved, err := r.theme.Resolve(u.category, raw)
		if err != nil {
			return utility{}, Value{}, false
		}
		if negative {
			resolved = negateValue(resolved)
		}
		return u, Value{
			Raw:      raw,
			Resolved: resolved,
			Present:  true,
			Negative: negative,
		}, true
	}

	return utility{}, Value{}, false
}

// lookupArbitrary finds the utility for a name-[value] candidate.
func (r *Registry) lookupArbitrary(name, rawValue string, negative bool) (utility, Value, bool) {
	u, ok := r.utilities[name]
	if !ok {
		return utility{}, Value{}, false
	}
	resolved, ok := normalizeArbitraryValue(rawValue)
	if !ok {
		return utility{}, Value{}, false
	}
	if negative {
		resolved = negateValue(resolved)
	}
	return u, Value{
		Raw:       rawValue,
		Resolved:  resolved,
		Present:   true,
		Arbitrary: true,
		Negative:  negative,
	}, true
}

// negateValue prefixes a length with "-". Zero stays zero; keywords pass
// through unchanged since the generator will reject them anyway.
func negateValue(v string) string {
	if v == "" || v == "0" {
		return v
	}
	if v[0] == '-' {
		return v[1:]
	}
	return "-" + v
}

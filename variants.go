package windgen

import "fmt"

// variantPlugin registers the built-in state and responsive variants.
type variantPlugin struct{}

func (variantPlugin) Name() string { return "variants" }

func (variantPlugin) Install(api PluginAPI) error {
	pseudoClasses := []string{
		"hover", "focus", "focus-within", "focus-visible",
		"active", "visited", "disabled",
		"first-child", "last-child",
	}
	for _, pseudo := range pseudoClasses {
		api.RegisterVariant(variantName(pseudo), pseudoVariant(":"+pseudo))
	}
	api.RegisterVariant("before", pseudoVariant("::before"))
	api.RegisterVariant("after", pseudoVariant("::after"))

	for name, min := range api.Theme().Category("breakpoints") {
		api.RegisterVariant(name, mediaVariant(fmt.Sprintf("@media (min-width: %s)", min)))
	}
	return nil
}

// variantName maps a pseudo-class to its candidate prefix; the structural
// pseudo-classes use the short Tailwind-style names.
func variantName(pseudo string) string {
	switch pseudo {
	case "first-child":
		return "first"
	case "last-child":
		return "last"
	}
	return pseudo
}

func pseudoVariant(suffix string) VariantFunc {
	return func(sc SelectorContext) (SelectorContext, bool) {
		sc.Selector += suffix
		return sc, true
	}
}

// mediaVariant wraps the rule in an at-rule. Prepending keeps the outer
// variant's condition outermost when variants stack.
func mediaVariant(atRule string) VariantFunc {
	return func(sc SelectorContext) (SelectorContext, bool) {
		sc.AtRules = append([]string{atRule}, sc.AtRules...)
		return sc, true
	}
}

// Dark-mode selector strategies.
const (
	DarkStrategyClass = "class"
	DarkStrategyMedia = "media"
)

// darkPlugin registers the dark: variant. The strategy option selects how
// the dark scope is expressed: a .dark ancestor class, or a
// prefers-color-scheme media query.
type darkPlugin struct {
	strategy string
}

// NewDarkPlugin returns the dark-mode variant plugin. An empty strategy
// defaults to the class strategy.
func NewDarkPlugin(strategy string) Plugin {
	return darkPlugin{strategy: strategy}
}

func (darkPlugin) Name() string { return "dark" }

func (p darkPlugin) Install(api PluginAPI) error {
	switch p.strategy {
	case DarkStrategyMedia:
		api.RegisterVariant("dark", mediaVariant("@media (prefers-color-scheme: dark)"))
	case DarkStrategyClass, "":
		api.RegisterVariant("dark", func(sc SelectorContext) (SelectorContext, bool) {
			sc.Selector = ".dark " + sc.Selector
			return sc, true
		})
	default:
		return fmt.Errorf("unknown dark strategy %q", p.strategy)
	}
	return nil
}

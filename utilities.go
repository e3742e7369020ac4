package windgen

import "fmt"

// ContainerConfig controls the generated .container component.
type ContainerConfig struct {
	Center  bool   // apply auto horizontal margins
	Padding string // horizontal padding, any CSS length; empty = none
}

// corePlugin registers the engine's built-in utilities. It runs first, so
// config plugins can override any of its registrations (last wins).
type corePlugin struct {
	container ContainerConfig
}

func (corePlugin) Name() string { return "core" }

func (p corePlugin) Install(api PluginAPI) error {
	registerSpacing(api)
	registerSizing(api)
	registerColors(api)
	registerTypography(api)
	registerLayout(api)
	registerBorders(api)
	registerEffects(api)
	p.registerContainer(api)
	return nil
}

// sided builds a generator writing one declaration per property suffix.
// Utilities that do not allow negative values fail closed on them.
func sided(property string, suffixes []string, allowNegative bool) GeneratorFunc {
	return func(v Value) ([]Declaration, bool) {
		if !v.Present {
			return nil, false
		}
		if v.Negative && !allowNegative {
			return nil, false
		}
		decls := make([]Declaration, len(suffixes))
		for i, s := range suffixes {
			decls[i] = Declaration{Property: property + s, Value: v.Resolved}
		}
		return decls, true
	}
}

// static builds a generator for a bare utility with fixed declarations.
func static(decls ...Declaration) GeneratorFunc {
	return func(v Value) ([]Declaration, bool) {
		if v.Present {
			return nil, false
		}
		return decls, true
	}
}

// single builds a generator writing one declaration from the resolved value.
func single(property string) GeneratorFunc {
	return sided(property, []string{""}, false)
}

func registerSpacing(api PluginAPI) {
	pads := map[string][]string{
		"p":  {""},
		"px": {"-left", "-right"},
		"py": {"-top", "-bottom"},
		"pt": {"-top"},
		"pr": {"-right"},
		"pb": {"-bottom"},
		"pl": {"-left"},
	}
	for name, sides := range pads {
		api.Register(name, "spacing", sided("padding", sides, false))
	}

	margins := map[string][]string{
		"m":  {""},
		"mx": {"-left", "-right"},
		"my": {"-top", "-bottom"},
		"mt": {"-top"},
		"mr": {"-right"},
		"mb": {"-bottom"},
		"ml": {"-left"},
	}
	for name, sides := range margins {
		api.Register(name, "spacing", sided("margin", sides, true))
		// Auto margins have no spacing token; register the bare form.
		auto := make([]Declaration, len(sides))
		for i, s := range sides {
			auto[i] = Declaration{Property: "margin" + s, Value: "auto"}
		}
		api.Register(name+"-auto", "", static(auto...))
	}

	api.Register("gap", "spacing", single("gap"))
	api.Register("gap-x", "spacing", single("column-gap"))
	api.Register("gap-y", "spacing", single("row-gap"))
}

func registerSizing(api PluginAPI) {
	api.Register("w", "sizing", single("width"))
	api.Register("h", "sizing", single("height"))
	api.Register("min-w", "sizing", single("min-width"))
	api.Register("min-h", "sizing", single("min-height"))
	api.Register("max-w", "sizing", single("max-width"))
	api.Register("max-h", "sizing", single("max-height"))
}

func registerColors(api PluginAPI) {
	api.Register("bg", "colors", single("background-color"))
	api.Register("text", "colors", single("color"))

	// Bare "border" is a 1px width; valued "border-..." is a color.
	api.Register("border", "colors", func(v Value) ([]Declaration, bool) {
		if v.Negative {
			return nil, false
		}
		if !v.Present {
			return []Declaration{{Property: "border-width", Value: "1px"}}, true
		}
		return []Declaration{{Property: "border-color", Value: v.Resolved}}, true
	})
}

func registerTypography(api PluginAPI) {
	// Font sizes and weights are enumerable scales, so each key becomes a
	// static utility. This keeps "text-lg" (size) and "text-blue-500"
	// (color) from fighting over one prefix.
	for key, value := range api.Theme().Category("fontSize") {
		api.Register("text-"+key, "", static(Declaration{Property: "font-size", Value: value}))
	}
	for key, value := range api.Theme().Category("fontWeight") {
		api.Register("font-"+key, "", static(Declaration{Property: "font-weight", Value: value}))
	}

	api.Register("text-left", "", static(Declaration{Property: "text-align", Value: "left"}))
	api.Register("text-center", "", static(Declaration{Property: "text-align", Value: "center"}))
	api.Register("text-right", "", static(Declaration{Property: "text-align", Value: "right"}))

	api.Register("italic", "", static(Declaration{Property: "font-style", Value: "italic"}))
	api.Register("underline", "", static(Declaration{Property: "text-decoration-line", Value: "underline"}))
	api.Register("line-through", "", static(Declaration{Property: "text-decoration-line", Value: "line-through"}))
	api.Register("uppercase", "", static(Declaration{Property: "text-transform", Value: "uppercase"}))
	api.Register("truncate", "", static(
		Declaration{Property: "overflow", Value: "hidden"},
		Declaration{Property: "text-overflow", Value: "ellipsis"},
		Declaration{Property: "white-space", Value: "nowrap"},
	))
}

func registerLayout(api PluginAPI) {
	displays := map[string]string{
		"block":        "block",
		"inline-block": "inline-block",
		"inline":       "inline",
		"flex":         "flex",
		"inline-flex":  "inline-flex",
		"grid":         "grid",
		"hidden":       "none",
	}
	for name, value := range displays {
		api.Register(name, "", static(Declaration{Property: "display", Value: value}))
	}

	positions := []string{"static", "relative", "absolute", "fixed", "sticky"}
	for _, name := range positions {
		api.Register(name, "", static(Declaration{Property: "position", Value: name}))
	}

	api.Register("flex-row", "", static(Declaration{Property: "flex-direction", Value: "row"}))
	api.Register("flex-col", "", static(Declaration{Property: "flex-direction", Value: "column"}))
	api.Register("flex-wrap", "", static(Declaration{Property: "flex-wrap", Value: "wrap"}))
	api.Register("flex-nowrap", "", static(Declaration{Property: "flex-wrap", Value: "nowrap"}))

	aligns := map[string]string{
		"items-start":    "flex-start",
		"items-center":   "center",
		"items-end":      "flex-end",
		"items-stretch":  "stretch",
		"items-baseline": "baseline",
	}
	for name, value := range aligns {
		api.Register(name, "", static(Declaration{Property: "align-items", Value: value}))
	}

	justifies := map[string]string{
		"justify-start":   "flex-start",
		"justify-center":  "center",
		"justify-end":     "flex-end",
		"justify-between": "space-between",
		"justify-around":  "space-around",
		"justify-evenly":  "space-evenly",
	}
	for name, value := range justifies {
		api.Register(name, "", static(Declaration{Property: "justify-content", Value: value}))
	}
}

func registerBorders(api PluginAPI) {
	api.Register("rounded", "borderRadius", single("border-radius"))
	api.Register("rounded-t", "borderRadius", sided("border", []string{"-top-left-radius", "-top-right-radius"}, false))
	api.Register("rounded-b", "borderRadius", sided("border", []string{"-bottom-left-radius", "-bottom-right-radius"}, false))
}

func registerEffects(api PluginAPI) {
	api.Register("shadow", "shadows", single("box-shadow"))
	api.Register("opacity", "", func(v Value) ([]Declaration, bool) {
		if !v.Present || !v.Arbitrary || v.Negative {
			return nil, false
		}
		return []Declaration{{Property: "opacity", Value: v.Resolved}}, true
	})
}

// registerContainer declares the container component: a full-width box with
// an optional centering margin and padding, capped at each breakpoint.
func (p corePlugin) registerContainer(api PluginAPI) {
	theme := api.Theme()
	breakpoints := theme.breakpointsInOrder()
	container := p.container

	api.RegisterComponent("container", func(v Value) []Rule {
		if v.Present {
			return nil
		}

		base := Rule{Declarations: []Declaration{{Property: "width", Value: "100%"}}}
		if container.Center {
			base.Declarations = append(base.Declarations,
				Declaration{Property: "margin-left", Value: "auto"},
				Declaration{Property: "margin-right", Value: "auto"},
			)
		}
		if container.Padding != "" {
			base.Declarations = append(base.Declarations,
				Declaration{Property: "padding-left", Value: container.Padding},
				Declaration{Property: "padding-right", Value: container.Padding},
			)
		}

		rules := []Rule{base}
		for _, name := range breakpoints {
			min, err := theme.Resolve("breakpoints", name)
			if err != nil {
				continue
			}
			rules = append(rules, Rule{
				AtRules:      []string{fmt.Sprintf("@media (min-width: %s)", min)},
				Declarations: []Declaration{{Property: "max-width", Value: min}},
			})
		}
		return rules
	})
}

// preflightPlugin emits a minimal base-layer reset ahead of all generated
// utilities.
type preflightPlugin struct{}

func (preflightPlugin) Name() string { return "preflight" }

func (preflightPlugin) Install(api PluginAPI) error {
	api.AddBase("*, ::before, ::after",
		Declaration{Property: "box-sizing", Value: "border-box"},
		Declaration{Property: "border-width", Value: "0"},
		Declaration{Property: "border-style", Value: "solid"},
	)
	api.AddBase("body",
		Declaration{Property: "margin", Value: "0"},
		Declaration{Property: "line-height", Value: "1.5"},
	)
	return nil
}

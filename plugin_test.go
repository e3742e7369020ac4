package windgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlugin struct {
	name    string
	install func(api PluginAPI) error
}

func (p stubPlugin) Name() string                { return p.name }
func (p stubPlugin) Install(api PluginAPI) error { return p.install(api) }

func TestPluginLastRegistrationWins(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)

	first := stubPlugin{name: "first", install: func(api PluginAPI) error {
		api.Register("badge", "", func(v Value) ([]Declaration, bool) {
			return []Declaration{{Property: "color", Value: "red"}}, true
		})
		return nil
	}}
	second := stubPlugin{name: "second", install: func(api PluginAPI) error {
		api.Register("badge", "", func(v Value) ([]Declaration, bool) {
			return []Declaration{{Property: "color", Value: "blue"}}, true
		})
		return nil
	}}
	require.NoError(t, reg.install([]Plugin{first, second}))

	rules := NewResolver(reg, nil).Resolve("badge")
	require.Len(t, rules, 1)
	assert.Equal(t, []Declaration{{Property: "color", Value: "blue"}}, rules[0].Declarations)
}

func TestPluginVariantOverride(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)

	plugins := []Plugin{
		corePlugin{},
		variantPlugin{},
		stubPlugin{name: "custom", install: func(api PluginAPI) error {
			api.RegisterVariant("hover", func(sc SelectorContext) (SelectorContext, bool) {
				sc.Selector = ".group:hover " + sc.Selector
				return sc, true
			})
			return nil
		}},
	}
	require.NoError(t, reg.install(plugins))

	rules := NewResolver(reg, nil).Resolve("hover:flex")
	require.Len(t, rules, 1)
	assert.Equal(t, `.group:hover .hover\:flex`, rules[0].Selector)
}

func TestPluginCanUseTheme(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)

	p := stubPlugin{name: "stack", install: func(api PluginAPI) error {
		gap, err := api.Resolve("spacing", "4")
		if err != nil {
			return err
		}
		api.Register("stack", "", func(v Value) ([]Declaration, bool) {
			return []Declaration{
				{Property: "display", Value: "flex"},
				{Property: "flex-direction", Value: "column"},
				{Property: "gap", Value: gap},
			}, true
		})
		return nil
	}}
	require.NoError(t, reg.install([]Plugin{p}))

	rules := NewResolver(reg, nil).Resolve("stack")
	require.Len(t, rules, 1)
	assert.Equal(t, "1rem", rules[0].Declarations[2].Value)
}

func TestPluginAddBase(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)

	p := stubPlugin{name: "reset", install: func(api PluginAPI) error {
		api.AddBase("html", Declaration{Property: "line-height", Value: "1.5"})
		api.AddBase("body", Declaration{Property: "margin", Value: "0"})
		return nil
	}}
	require.NoError(t, reg.install([]Plugin{p}))

	require.Len(t, reg.baseRules, 2)
	assert.Equal(t, "html", reg.baseRules[0].Selector)
	assert.Equal(t, LayerBase, reg.baseRules[0].Layer)
	assert.Equal(t, "body", reg.baseRules[1].Selector)
}

func TestPluginInstallErrorIsConfigError(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)

	boom := errors.New("bad option")
	p := stubPlugin{name: "broken", install: func(api PluginAPI) error {
		return boom
	}}

	err := reg.install([]Plugin{p})
	require.Error(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestDarkPluginUnknownStrategy(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)
	err := reg.install([]Plugin{NewDarkPlugin("system")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "system")
}

func TestDarkPluginMediaStrategy(t *testing.T) {
	reg := newRegistry(buildTheme(ThemeSpec{}), nil)
	require.NoError(t, reg.install([]Plugin{corePlugin{}, NewDarkPlugin(DarkStrategyMedia)}))

	rules := NewResolver(reg, nil).Resolve("dark:bg-gray-900")
	require.Len(t, rules, 1)
	assert.Equal(t, `.dark\:bg-gray-900`, rules[0].Selector)
	assert.Equal(t, []string{"@media (prefers-color-scheme: dark)"}, rules[0].AtRules)
}

func TestNegateValue(t *testing.T) {
	assert.Equal(t, "-1rem", negateValue("1rem"))
	assert.Equal(t, "0", negateValue("0"))
	assert.Equal(t, "", negateValue(""))
	assert.Equal(t, "4px", negateValue("-4px"))
}

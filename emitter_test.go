package windgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitLayerOrder(t *testing.T) {
	e := NewEmitter(nil)

	rules := []Rule{
		{Selector: ".p-4", Layer: LayerUtilities, order: 0,
			Declarations: []Declaration{{Property: "padding", Value: "1rem"}}},
		{Selector: ".container", Layer: LayerComponents, order: 1,
			Declarations: []Declaration{{Property: "width", Value: "100%"}}},
		{Selector: "body", Layer: LayerBase, order: 0,
			Declarations: []Declaration{{Property: "margin", Value: "0"}}},
	}

	css, collisions := e.Emit(rules)
	require.Zero(t, collisions)
	assert.Equal(t, "body {\n  margin: 0;\n}\n\n.container {\n  width: 100%;\n}\n\n.p-4 {\n  padding: 1rem;\n}\n", css)
}

func TestEmitDiscoveryOrderWithinLayer(t *testing.T) {
	e := NewEmitter(nil)

	rules := []Rule{
		{Selector: ".m-2", Layer: LayerUtilities, order: 3,
			Declarations: []Declaration{{Property: "margin", Value: "0.5rem"}}},
		{Selector: ".flex", Layer: LayerUtilities, order: 1,
			Declarations: []Declaration{{Property: "display", Value: "flex"}}},
	}

	css, _ := e.Emit(rules)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n\n.m-2 {\n  margin: 0.5rem;\n}\n", css)
}

func TestEmitDedupesIdenticalRules(t *testing.T) {
	e := NewEmitter(nil)

	rule := Rule{Selector: ".flex", Layer: LayerUtilities,
		Declarations: []Declaration{{Property: "display", Value: "flex"}}}

	css, collisions := e.Emit([]Rule{rule, rule, rule})
	assert.Zero(t, collisions)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n", css)
}

func TestEmitCollisionLaterWins(t *testing.T) {
	e := NewEmitter(nil)

	rules := []Rule{
		{Selector: ".btn", Layer: LayerComponents, order: 0,
			Declarations: []Declaration{{Property: "color", Value: "red"}}},
		{Selector: ".btn", Layer: LayerComponents, order: 1,
			Declarations: []Declaration{{Property: "color", Value: "blue"}}},
	}

	css, collisions := e.Emit(rules)
	assert.Equal(t, 1, collisions)
	assert.Equal(t, ".btn {\n  color: blue;\n}\n", css)
}

func TestEmitCollisionKeepsPosition(t *testing.T) {
	// The winning declarations replace the loser in place; the rule does not
	// move to the end of the layer.
	e := NewEmitter(nil)

	rules := []Rule{
		{Selector: ".a", Layer: LayerUtilities, order: 0,
			Declarations: []Declaration{{Property: "color", Value: "red"}}},
		{Selector: ".b", Layer: LayerUtilities, order: 1,
			Declarations: []Declaration{{Property: "color", Value: "green"}}},
		{Selector: ".a", Layer: LayerUtilities, order: 2,
			Declarations: []Declaration{{Property: "color", Value: "blue"}}},
	}

	css, collisions := e.Emit(rules)
	assert.Equal(t, 1, collisions)
	assert.Equal(t, ".a {\n  color: blue;\n}\n\n.b {\n  color: green;\n}\n", css)
}

func TestEmitAtRuleIdentity(t *testing.T) {
	// The same selector under different at-rules is two distinct rules, not
	// a collision.
	e := NewEmitter(nil)

	rules := []Rule{
		{Selector: `.md\:p-8`, Layer: LayerUtilities, order: 0,
			AtRules:      []string{"@media (min-width: 768px)"},
			Declarations: []Declaration{{Property: "padding", Value: "2rem"}}},
		{Selector: `.md\:p-8`, Layer: LayerUtilities, order: 1,
			Declarations: []Declaration{{Property: "padding", Value: "3rem"}}},
	}

	css, collisions := e.Emit(rules)
	assert.Zero(t, collisions)
	assert.Equal(t,
		"@media (min-width: 768px) {\n  .md\\:p-8 {\n    padding: 2rem;\n  }\n}\n\n.md\\:p-8 {\n  padding: 3rem;\n}\n",
		css)
}

func TestEmitEmpty(t *testing.T) {
	css, collisions := NewEmitter(nil).Emit(nil)
	assert.Empty(t, css)
	assert.Zero(t, collisions)
}

func TestEmitImportantDeclaration(t *testing.T) {
	css, _ := NewEmitter(nil).Emit([]Rule{
		{Selector: `.p-4\!`, Layer: LayerUtilities,
			Declarations: []Declaration{{Property: "padding", Value: "1rem", Important: true}}},
	})
	assert.Equal(t, ".p-4\\! {\n  padding: 1rem !important;\n}\n", css)
}

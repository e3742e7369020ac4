package windgen

import "strings"

// Layer is the cascade bucket a rule is emitted into. Later layers appear
// later in the output, so they win on equal selector specificity.
type Layer int

// Layers in emit order.
const (
	LayerBase Layer = iota
	LayerComponents
	LayerUtilities
)

func (l Layer) String() string {
	switch l {
	case LayerBase:
		return "base"
	case LayerComponents:
		return "components"
	case LayerUtilities:
		return "utilities"
	}
	return "unknown"
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a resolved CSS rule: a selector, the at-rule wrappers around it
// (outermost first), and an ordered declaration list. Rules are immutable
// once the resolver hands them out.
type Rule struct {
	Selector     string
	AtRules      []string
	Declarations []Declaration
	Layer        Layer

	// order is the first-discovery index of the source candidate within the
	// canonical file list. It keeps output stable across runs and across
	// scan parallelism.
	order int
}

// identity keys a rule position in the cascade: two rules with the same
// identity target the same selector in the same context.
func (r Rule) identity() string {
	return r.Layer.String() + "\x00" + strings.Join(r.AtRules, "\x00") + "\x00" + r.Selector
}

// declsEqual reports whether two rules carry identical declaration lists.
func declsEqual(a, b []Declaration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// classEscapes lists characters that must be backslash-escaped when a
// candidate string is used as a CSS class selector.
const classEscapes = `:./[]!#%()`

// escapeClassName escapes a raw candidate string for use in a class
// selector, e.g. "md:p-8" -> `md\:p-8`.
func escapeClassName(name string) string {
	if !strings.ContainsAny(name, classEscapes) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if strings.ContainsRune(classEscapes, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeRule serializes one rule, indenting by at-rule nesting depth.
func writeRule(b *strings.Builder, r Rule) {
	depth := 0
	for _, at := range r.AtRules {
		writeIndent(b, depth)
		b.WriteString(at)
		b.WriteString(" {\n")
		depth++
	}

	writeIndent(b, depth)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		writeIndent(b, depth+1)
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	writeIndent(b, depth)
	b.WriteString("}\n")

	for depth > 0 {
		depth--
		writeIndent(b, depth)
		b.WriteString("}\n")
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

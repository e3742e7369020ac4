package windgen

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Emitter orders, deduplicates, and serializes resolved rules into the
// final stylesheet text.
type Emitter struct {
	log *zap.Logger
}

// NewEmitter creates an emitter. A nil logger disables collision warnings.
func NewEmitter(log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{log: log.Named("emitter")}
}

// Emit serializes rules grouped by layer (base, components, utilities) and,
// within a layer, by first-discovery order of the source candidate. Exact
// duplicates collapse to one rule; two candidates producing different
// declarations for the same selector in the same layer are a collision:
// the later-discovered one wins and the collision count is reported.
func (e *Emitter) Emit(rules []Rule) (string, int) {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Layer != ordered[j].Layer {
			return ordered[i].Layer < ordered[j].Layer
		}
		return ordered[i].order < ordered[j].order
	})

	var kept []Rule
	index := make(map[string]int)
	collisions := 0
	for _, rule := range ordered {
		id := rule.identity()
		pos, exists := index[id]
		if !exists {
			index[id] = len(kept)
			kept = append(kept, rule)
			continue
		}
		if declsEqual(kept[pos].Declarations, rule.Declarations) {
			continue
		}
		collisions++
		e.log.Warn("rule collision, later candidate wins",
			zap.String("selector", rule.Selector),
			zap.String("layer", rule.Layer.String()))
		kept[pos] = rule
	}

	var b strings.Builder
	for i, rule := range kept {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeRule(&b, rule)
	}
	return b.String(), collisions
}

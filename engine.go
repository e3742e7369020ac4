package windgen

import "go.uber.org/zap"

// Result contains the emitted stylesheet and generation statistics.
type Result struct {
	CSS        string
	Stats      ScanStats
	Candidates int // distinct candidate strings scanned
	Rules      int // resolved rules before emit-time deduplication
	Collisions int // same-selector collisions resolved last-wins
}

// Engine is a configured generation pipeline. Initialization (theme merge,
// plugin installation) happens once in New; after that the engine is
// read-only and Generate may be called repeatedly, each run building a
// fresh stylesheet from the current content set.
type Engine struct {
	config   Config
	registry *Registry
	resolver *Resolver
	emitter  *Emitter
	log      *zap.Logger
}

// New validates the configuration, merges the theme, and runs the plugin
// installation pass. Configuration problems are reported together as a
// single ConfigError.
func New(config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	theme := buildTheme(config.Theme)
	registry := newRegistry(theme, log)

	plugins := make([]Plugin, 0, len(config.Plugins)+4)
	if config.Preflight {
		plugins = append(plugins, preflightPlugin{})
	}
	plugins = append(plugins,
		corePlugin{container: config.Container},
		variantPlugin{},
		NewDarkPlugin(config.DarkMode),
	)
	plugins = append(plugins, config.Plugins...)
	if err := registry.install(plugins); err != nil {
		return nil, err
	}

	return &Engine{
		config:   config,
		registry: registry,
		resolver: NewResolver(registry, log),
		emitter:  NewEmitter(log),
		log:      log.Named("engine"),
	}, nil
}

// Generate runs one scan-resolve-emit pass. The run is atomic: on error no
// stylesheet is produced, and the engine holds no state from failed or
// previous runs beyond the resolver's pure memo cache.
func (e *Engine) Generate() (*Result, error) {
	scan, err := ScanContent(e.config.Content)
	if err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(scan.Candidates)+len(e.registry.baseRules))
	rules = append(rules, e.registry.baseRules...)
	for i, candidate := range scan.Candidates {
		for _, rule := range e.resolver.Resolve(candidate) {
			rule.order = i
			rules = append(rules, rule)
		}
	}

	css, collisions := e.emitter.Emit(rules)
	e.log.Debug("generation complete",
		zap.Int("files", scan.Stats.FilesScanned),
		zap.Int("candidates", len(scan.Candidates)),
		zap.Int("rules", len(rules)),
		zap.Int("collisions", collisions))

	return &Result{
		CSS:        css,
		Stats:      scan.Stats,
		Candidates: len(scan.Candidates),
		Rules:      len(rules),
		Collisions: collisions,
	}, nil
}

// Generate is the one-shot entry point: build an engine and run a single
// generation pass.
func Generate(config Config) (*Result, error) {
	engine, err := New(config)
	if err != nil {
		return nil, err
	}
	return engine.Generate()
}

// Package windgen generates utility-class stylesheets from scanned source content.
//
// windgen is a small compile-like pipeline: it scans a configured set of
// source files for utility-class candidates, resolves each candidate against
// a design-token theme and a plugin registry, and emits a single layered
// stylesheet containing only the rules that are actually used.
//
// # Generation
//
//	config := windgen.Config{
//		Content: []string{"web/**/*.html", "web/**/*.md"},
//	}
//	result, err := windgen.Generate(config)
//	if err != nil {
//		// handle ConfigError / ScanError
//	}
//	os.WriteFile("dist/styles.css", []byte(result.CSS), 0644)
//
// Candidates that do not resolve to a known utility are dropped silently:
// scanned content carries no guarantee that a given token is a class name
// at all, so unknown tokens are a normal filtering outcome, not an error.
//
// # Plugins
//
// Additional utilities and variants are registered through the Plugin
// interface. Plugins install in configured order and a later registration
// for the same name wins:
//
//	config.Plugins = append(config.Plugins, myPlugin{})
//
// # CLI Tool
//
// windgen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/windgen/cmd/windgen@latest
package windgen

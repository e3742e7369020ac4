package windgen

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config describes one generation run.
type Config struct {
	// Content lists glob patterns identifying the source file set to scan.
	// Doublestar (**) patterns are supported.
	Content []string

	// Theme carries token overrides, deep-merged over the default scale.
	Theme ThemeSpec

	// Container configures the .container component.
	Container ContainerConfig

	// DarkMode selects the dark: variant strategy: "class" (default) or
	// "media".
	DarkMode string

	// Preflight enables the base-layer reset.
	Preflight bool

	// Plugins are applied in order after the built-in plugins, so a plugin
	// can override any built-in utility or variant (last wins).
	Plugins []Plugin

	// Logger receives override and collision events. Nil disables logging.
	Logger *zap.Logger
}

// validate collects every configuration problem rather than stopping at the
// first one.
func (c Config) validate() error {
	var err error
	if len(c.Content) == 0 {
		err = multierr.Append(err, errors.New("content: at least one glob pattern is required"))
	}
	for _, pattern := range c.Content {
		if pattern == "" {
			err = multierr.Append(err, errors.New("content: empty glob pattern"))
		}
	}
	switch c.DarkMode {
	case "", DarkStrategyClass, DarkStrategyMedia:
	default:
		err = multierr.Append(err, fmt.Errorf("dark-mode: unknown strategy %q", c.DarkMode))
	}
	if c.Container.Padding != "" && !lexesAsCSSValue(c.Container.Padding) {
		err = multierr.Append(err, fmt.Errorf("container.padding: %q is not a CSS value", c.Container.Padding))
	}
	for category, tokens := range c.Theme.Replace {
		if category == "extend" {
			err = multierr.Append(err, errors.New(`theme: "extend" is a reserved sub-key, not a category`))
		}
		for key, value := range tokens {
			if !lexesAsCSSValue(value) {
				err = multierr.Append(err, fmt.Errorf("theme.%s.%s: %q is not a CSS value", category, key, value))
			}
		}
	}
	for category, tokens := range c.Theme.Extend {
		for key, value := range tokens {
			if !lexesAsCSSValue(value) {
				err = multierr.Append(err, fmt.Errorf("theme.extend.%s.%s: %q is not a CSS value", category, key, value))
			}
		}
	}
	if err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/windgen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".windgen.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (WINDGEN_* prefix)
	if err := k.Load(env.Provider("WINDGEN_", ".", func(s string) string {
		// WINDGEN_OUTPUT -> output
		// WINDGEN_DARK_MODE -> dark.mode (dashes are not expressible in env
		// names, so dark-mode is also accepted under the dotted key)
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "WINDGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (windgen.Config, error) {
	config := windgen.Config{
		DarkMode:  getStringWithFallback("dark-mode", "dark.mode", windgen.DarkStrategyClass),
		Preflight: getBoolWithFallback("preflight", "preflight", true),
		Container: windgen.ContainerConfig{
			Center:  k.Bool("container.center"),
			Padding: k.String("container.padding"),
		},
		Theme: buildThemeSpec(),
	}

	if content := k.Strings("content"); len(content) > 0 {
		config.Content = content
	} else {
		config.Content = []string{
			"web/**/*.html",
			"web/**/*.md",
			"web/**/*.js",
		}
	}

	plugins, err := buildPlugins()
	if err != nil {
		return config, err
	}
	config.Plugins = plugins

	return config, nil
}

// buildThemeSpec normalizes the yaml theme block: top-level categories
// replace the default scale, the reserved "extend" sub-key deep-merges.
func buildThemeSpec() windgen.ThemeSpec {
	spec := windgen.ThemeSpec{
		Replace: make(map[string]map[string]string),
		Extend:  make(map[string]map[string]string),
	}

	raw, ok := k.Get("theme").(map[string]interface{})
	if !ok {
		return spec
	}
	for category, tokens := range raw {
		if category == "extend" {
			nested, ok := tokens.(map[string]interface{})
			if !ok {
				continue
			}
			for c, t := range nested {
				spec.Extend[c] = toTokenMap(t)
			}
			continue
		}
		spec.Replace[category] = toTokenMap(tokens)
	}
	return spec
}

func toTokenMap(v interface{}) map[string]string {
	tokens := make(map[string]string)
	m, ok := v.(map[string]interface{})
	if !ok {
		return tokens
	}
	for key, value := range m {
		tokens[key] = fmt.Sprintf("%v", value)
	}
	return tokens
}

// buildPlugins maps the ordered yaml plugin list to built-in plugins.
// Entries are either a bare name or a map with a name and options, e.g.
//
//	plugins:
//	  - name: dark
//	    strategy: media
func buildPlugins() ([]windgen.Plugin, error) {
	raw, ok := k.Get("plugins").([]interface{})
	if !ok {
		return nil, nil
	}

	var plugins []windgen.Plugin
	for _, entry := range raw {
		name := ""
		options := map[string]string{}
		switch e := entry.(type) {
		case string:
			name = e
		case map[string]interface{}:
			for key, value := range e {
				if key == "name" {
					name = fmt.Sprintf("%v", value)
				} else {
					options[key] = fmt.Sprintf("%v", value)
				}
			}
		}

		switch name {
		case "dark":
			plugins = append(plugins, windgen.NewDarkPlugin(options["strategy"]))
		default:
			return nil, fmt.Errorf("unknown plugin %q", name)
		}
	}
	return plugins, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

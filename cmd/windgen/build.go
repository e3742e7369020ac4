package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/windgen"
	"go.uber.org/zap"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"generate", "gen"},
	Short:   "Scan content and emit the stylesheet",
	Long: `Scan the configured content set for utility-class candidates, resolve
them against the theme and plugins, and write a single layered stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for content files to scan")
	f.String("output", "dist/windgen.css", "Output stylesheet path")
	f.String("dark-mode", "", "Dark variant strategy: class|media")
	f.Bool("preflight", true, "Emit the base-layer reset")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	verbose := getBoolWithFallback("verbose", "verbose", false)
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		config.Logger = logger
	}

	result, err := windgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	output := getStringWithFallback("output", "output", "dist/windgen.css")
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(output, []byte(result.CSS), 0644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		useColors := getBoolWithFallback("color", "color", false)
		windgen.WriteSummary(cmd.OutOrStdout(), result, output, useColors)
	}

	return nil
}

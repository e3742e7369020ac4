package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .windgen.yaml config file",
	Long:  `Create a .windgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".windgen.yaml"); err == nil && !force {
			return fmt.Errorf(".windgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".windgen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .windgen.yaml")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

const defaultConfig = `# windgen configuration
# Docs: https://github.com/yacobolo/windgen

content:
  - "web/**/*.html"
  - "web/**/*.md"
  - "web/**/*.js"

output: dist/windgen.css

# Base-layer reset emitted ahead of all utilities
preflight: true

# Dark variant strategy: class | media
dark-mode: class

container:
  center: true
  padding: 1rem

# Token overrides. Top-level categories replace the default scale;
# the reserved "extend" sub-key merges into it instead.
theme:
  extend:
    colors:
      brand: "#8b5cf6"

# Ordered plugin list; later registrations win over earlier ones.
# plugins:
#   - name: dark
#     strategy: media
`

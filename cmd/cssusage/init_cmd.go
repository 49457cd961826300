package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssusage.yaml config file",
	Long:  `Create a .cssusage.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssusage.yaml"); err == nil && !force {
			return fmt.Errorf(".cssusage.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssusage.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssusage.yaml")
		return nil
	},
}

const defaultConfig = `# cssusage configuration
# Docs: https://github.com/yacobolo/cssusage

# Paths (stylesheet and output are relative to root)
root: .
stylesheet: assets/css/admin.css
output: tmp/css_usage_report.json
verbose: false

# Extra selector names never reported (added to the built-in denylist)
ignore: []

# File walk
scan:
  extensions: [".php", ".html", ".js", ".css", ".md", ".twig"]
  exclude-dirs: ["vendor", "node_modules", ".git"]
  exclude: []          # glob patterns relative to root, e.g. "legacy/**"
  gitignore: false     # also skip paths matched by root/.gitignore

# Report settings
report:
  format: json         # json | summary | markdown (stdout only; the file is always JSON)
  strict: false        # exit 1 when unused selectors are found
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

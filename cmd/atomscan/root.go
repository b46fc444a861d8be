package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atomscan",
	Short: "Atomic CSS class token scanner, linter and generator",
	Long: `Recognize atomic class tokens like "D_Bgc(red)!:h--md" in markup and
source files, decompose them into property, value, pseudo-state and
breakpoint, lint near-miss tokens, and generate the matching stylesheet.`,
	// Default behavior: run scan when no subcommand is given.
	// loadConfig must be called here because PreRunE of scanCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runScan(scanCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".atomscan.yaml", "Config file path")
	rootCmd.PersistentFlags().String("rules-file", "", "YAML file with custom rule tables")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

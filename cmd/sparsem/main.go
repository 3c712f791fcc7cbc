// Package main provides the sparsem CLI, a small toolkit for sparse
// integer matrices stored in plain-text files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/pkg/sparsem"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configDataDir   string
	configOutputDir string
	configHistory   = true
)

var rootCmd = &cobra.Command{
	Use:   "sparsem",
	Short: "Sparsem operates on sparse matrices stored in text files",
	Long: `Sparsem loads sparse integer matrices from plain-text files, performs
addition, subtraction, and multiplication on them, and writes the
results back in the same format. Performed operations are journaled so
past runs can be listed.`,
	Version:      sparsem.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version and help need no configuration.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configOutputDir = cfg.GetString(cfgKeyOutputDir)
		configHistory = cfg.GetBool(cfgKeyHistory)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the run journal (default: $(CWD)/.sparsem-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subtractCmd)
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

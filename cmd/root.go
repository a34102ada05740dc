package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/winestats/internal/config"
	"github.com/KaramelBytes/winestats/internal/logging"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	noColor bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "winestats",
	Short: "Per-class descriptive statistics for the wine dataset",
	Long: `winestats groups wine samples by class and reports the mean, median and mode
of Flavanoids and of the derived Gamma feature (Ash * Hue / Magnesium) as HTML,
Markdown, terminal, JSON or YAML tables.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.winestats/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored terminal output")
}

func loadConfig() {
	if err := logging.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to initialize logger: %v\n", err)
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = nil
	}
	cfg = c
	if noColor || (cfg != nil && !cfg.Color) {
		color.NoColor = true
	}
}

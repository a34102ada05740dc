package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/winestats/internal/analysis"
	cfgpkg "github.com/KaramelBytes/winestats/internal/config"
	"github.com/KaramelBytes/winestats/internal/dataset"
	"github.com/KaramelBytes/winestats/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set winestats configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		data := cfg.DataPath
		if data == "" {
			data = dataset.DefaultName
		}
		fmt.Fprintf(out, "data_path: %s\n", data)
		fmt.Fprintf(out, "format: %s\n", cfg.Format)
		if cfg.Output != "" {
			fmt.Fprintf(out, "output: %s\n", cfg.Output)
		}
		fmt.Fprintf(out, "features: %s\n", strings.Join(cfg.Features, ","))
		fmt.Fprintf(out, "group_by: %s\n", cfg.GroupBy)
		fmt.Fprintf(out, "class_prefix: %q\n", cfg.ClassPrefix)
		fmt.Fprintf(out, "color: %t\n", cfg.Color)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_path":
			cfg.DataPath = val
		case "format":
			f, err := render.ParseFormat(val)
			if err != nil {
				return err
			}
			cfg.Format = string(f)
		case "output":
			cfg.Output = val
		case "features":
			var names []string
			for _, n := range strings.Split(val, ",") {
				f, err := analysis.LookupFeature(n)
				if err != nil {
					return err
				}
				names = append(names, f.Name)
			}
			cfg.Features = names
		case "group_by":
			field, ok := dataset.CanonicalField(val)
			if !ok {
				return fmt.Errorf("%w: %s", analysis.ErrUnknownField, val)
			}
			cfg.GroupBy = field
		case "class_prefix":
			cfg.ClassPrefix = val
		case "color":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for color: %w", err)
			}
			cfg.Color = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

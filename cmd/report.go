package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/winestats/internal/analysis"
	"github.com/KaramelBytes/winestats/internal/dataset"
	"github.com/KaramelBytes/winestats/internal/logging"
	"github.com/KaramelBytes/winestats/internal/render"
	"github.com/KaramelBytes/winestats/internal/utils"
)

var (
	repDataPath    string
	repFormat      string
	repOutputPath  string
	repFeatures    []string
	repGroupBy     string
	repClassPrefix string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute per-class statistics and render them as tables",
	Example: `  winestats report --output wine.html
  winestats report --format text
  winestats report --data ./wine.csv --format markdown --feature flavanoids --feature hue`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := reportSettings(cmd)
		format, err := render.ParseFormat(s.format)
		if err != nil {
			return err
		}

		log := logging.L()
		start := time.Now()
		records, source, err := loadRecords(s.dataPath)
		if err != nil {
			return err
		}
		log.Debug("dataset loaded", zap.String("source", source), zap.Int("records", len(records)))

		rep, err := analysis.Analyze(records,
			analysis.WithSource(source),
			analysis.WithFeatures(s.features...),
			analysis.WithGroupBy(s.groupBy),
			analysis.WithClassPrefix(s.classPrefix),
		)
		if err != nil {
			return err
		}

		if s.output != "" && format == render.Text {
			color.NoColor = true
		}
		var buf bytes.Buffer
		if err := render.Write(&buf, rep, format); err != nil {
			return err
		}

		if s.output == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := utils.SafeWriteFile(s.output, buf.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Debug("report written",
			zap.String("report_id", rep.ID),
			zap.String("path", s.output),
			zap.String("format", string(format)),
			zap.Duration("elapsed", time.Since(start)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s report to %s\n", format, s.output)
		return nil
	},
}

type settings struct {
	dataPath    string
	format      string
	output      string
	features    []string
	groupBy     string
	classPrefix string
}

// reportSettings merges flags over the loaded configuration.
func reportSettings(cmd *cobra.Command) settings {
	s := settings{
		format:      string(render.HTML),
		features:    analysis.DefaultFeatures,
		groupBy:     analysis.DefaultGroupBy,
		classPrefix: analysis.DefaultClassPrefix,
	}
	if cfg != nil {
		s.dataPath = cfg.DataPath
		s.output = cfg.Output
		if cfg.Format != "" {
			s.format = cfg.Format
		}
		if len(cfg.Features) > 0 {
			s.features = cfg.Features
		}
		if cfg.GroupBy != "" {
			s.groupBy = cfg.GroupBy
		}
		s.classPrefix = cfg.ClassPrefix
	}
	f := cmd.Flags()
	if f.Changed("data") {
		s.dataPath = repDataPath
	}
	if f.Changed("format") {
		s.format = repFormat
	}
	if f.Changed("output") {
		s.output = repOutputPath
	}
	if f.Changed("feature") {
		s.features = repFeatures
	}
	if f.Changed("group-by") {
		s.groupBy = repGroupBy
	}
	if f.Changed("class-prefix") {
		s.classPrefix = repClassPrefix
	}
	return s
}

func loadRecords(path string) ([]dataset.Record, string, error) {
	if path == "" {
		recs, err := dataset.Default()
		return recs, dataset.DefaultName, err
	}
	recs, err := dataset.Load(path)
	if err != nil {
		return nil, "", err
	}
	return recs, path, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repDataPath, "data", "d", "", "dataset file (.json, .yaml, .csv, .tsv, .xlsx); bundled dataset if omitted")
	reportCmd.Flags().StringVarP(&repFormat, "format", "f", "html", "output format: html|markdown|text|json|yaml")
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "write the report to this file instead of stdout")
	reportCmd.Flags().StringSliceVar(&repFeatures, "feature", nil, "feature to report (repeatable); see 'winestats features'")
	reportCmd.Flags().StringVar(&repGroupBy, "group-by", analysis.DefaultGroupBy, "record field holding the class indicator")
	reportCmd.Flags().StringVar(&repClassPrefix, "class-prefix", analysis.DefaultClassPrefix, "label prepended to class values")
}

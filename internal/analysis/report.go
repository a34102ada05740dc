package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KaramelBytes/winestats/internal/dataset"
	"github.com/KaramelBytes/winestats/internal/logging"
	"github.com/KaramelBytes/winestats/internal/stats"
)

// Report is the result of one analysis run. It is built once and not
// modified afterwards.
type Report struct {
	ID          string          `json:"id" yaml:"id"`
	Source      string          `json:"source" yaml:"source"`
	Records     int             `json:"records" yaml:"records"`
	GroupBy     string          `json:"group_by" yaml:"group_by"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Features    []FeatureReport `json:"features" yaml:"features"`
}

// FeatureReport holds the statistics of one feature. Table is nil when the
// mapping is empty.
type FeatureReport struct {
	Name  string        `json:"name" yaml:"name"`
	Title string        `json:"title" yaml:"title"`
	Stats stats.Mapping `json:"-" yaml:"-"`
	Table *Table        `json:"table,omitempty" yaml:"table,omitempty"`
}

// Tables returns the tables that have content, in feature order.
func (r *Report) Tables() []*Table {
	var out []*Table
	for _, f := range r.Features {
		if f.Table != nil {
			out = append(out, f.Table)
		}
	}
	return out
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	features    []string
	groupBy     string
	classPrefix string
	source      string
	now         func() time.Time
}

// WithFeatures selects the features to report, in order.
func WithFeatures(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.features = names
		}
	}
}

// WithGroupBy sets the record field used as class indicator.
func WithGroupBy(field string) Option {
	return func(o *options) {
		if field != "" {
			o.groupBy = field
		}
	}
}

// WithClassPrefix sets the label prepended to class values.
func WithClassPrefix(prefix string) Option {
	return func(o *options) { o.classPrefix = prefix }
}

// WithSource records the dataset name in the report.
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func applyOptions(opts []Option) *options {
	o := &options{
		features:    DefaultFeatures,
		groupBy:     DefaultGroupBy,
		classPrefix: DefaultClassPrefix,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Analyze computes the statistics mapping and table of every selected
// feature over records.
func Analyze(records []dataset.Record, opts ...Option) (*Report, error) {
	o := applyOptions(opts)
	key, err := ClassKey(o.groupBy, o.classPrefix)
	if err != nil {
		return nil, err
	}
	groupBy, _ := dataset.CanonicalField(o.groupBy)

	rep := &Report{
		ID:          uuid.NewString(),
		Source:      o.source,
		Records:     len(records),
		GroupBy:     groupBy,
		GeneratedAt: o.now().UTC(),
	}
	log := logging.L().With(zap.String("report_id", rep.ID))
	for _, name := range o.features {
		f, err := LookupFeature(name)
		if err != nil {
			return nil, err
		}
		m := ComputeGroupStatsBy(records, key, f.Extract)
		fr := FeatureReport{Name: f.Name, Title: f.Title(), Stats: m}
		if len(m) > 0 {
			t, err := ToTable(m, fr.Title)
			if err != nil {
				return nil, fmt.Errorf("tabulate %s: %w", f.Name, err)
			}
			fr.Table = t
		}
		log.Debug("feature computed", zap.String("feature", f.Name), zap.Int("groups", len(m)))
		rep.Features = append(rep.Features, fr)
	}
	return rep, nil
}

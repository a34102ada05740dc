package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/winestats/internal/dataset"
)

// Extractor maps a record to the numeric value being aggregated.
type Extractor func(dataset.Record) float64

// KeyFunc maps a record to its group key.
type KeyFunc func(dataset.Record) string

// Feature is a named extractor that can be reported on.
type Feature struct {
	Name        string
	Label       string
	Description string
	Extract     Extractor
}

// Title is the table caption used for the feature.
func (f Feature) Title() string { return f.Label + " Statistics" }

var (
	// ErrUnknownFeature indicates a feature name that is neither built in nor a record field.
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrUnknownField indicates a group-by field that is not a record field.
	ErrUnknownField = errors.New("unknown field")
)

// DefaultClassPrefix is prepended to the class value to form group keys.
const DefaultClassPrefix = "Class "

// DefaultGroupBy is the record field holding the class indicator.
const DefaultGroupBy = "Alcohol"

// DefaultFeatures are reported when no features are selected.
var DefaultFeatures = []string{"flavanoids", "gamma"}

// Gamma is the derived feature Ash * Hue / Magnesium. A zero Magnesium
// yields an infinity or NaN and is not guarded.
func Gamma(r dataset.Record) float64 {
	return r.Ash.Float() * r.Hue.Float() / r.Magnesium.Float()
}

// Flavanoids projects the Flavanoids measurement.
func Flavanoids(r dataset.Record) float64 {
	return r.Flavanoids.Float()
}

var gammaFeature = Feature{
	Name:        "gamma",
	Label:       "Gamma",
	Description: "derived: Ash * Hue / Magnesium",
	Extract:     Gamma,
}

// Features lists every selectable feature: one per record field, then the derived ones.
func Features() []Feature {
	names := dataset.FieldNames()
	out := make([]Feature, 0, len(names)+1)
	for _, n := range names {
		out = append(out, fieldFeature(n))
	}
	return append(out, gammaFeature)
}

// LookupFeature resolves a feature by slug ("malic-acid") or by field name
// ("Malic Acid"). Lookup ignores case.
func LookupFeature(name string) (Feature, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Features() {
		if f.Name == want || strings.EqualFold(f.Label, want) {
			return f, nil
		}
	}
	return Feature{}, fmt.Errorf("%w: %s", ErrUnknownFeature, name)
}

func fieldFeature(field string) Feature {
	if field == "Flavanoids" {
		return Feature{Name: "flavanoids", Label: field, Description: "field: Flavanoids", Extract: Flavanoids}
	}
	return Feature{
		Name:        slug(field),
		Label:       field,
		Description: "field: " + field,
		Extract: func(r dataset.Record) float64 {
			v, _ := r.Field(field)
			return v
		},
	}
}

// ClassKey builds the group key function for a record field: prefix followed
// by the field value formatted as a JavaScript number string.
func ClassKey(field, prefix string) (KeyFunc, error) {
	canonical, ok := dataset.CanonicalField(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return func(r dataset.Record) string {
		v, _ := r.Field(canonical)
		return prefix + FormatNumber(v)
	}, nil
}

// AlcoholClass is the default group key: "Class " + Alcohol.
func AlcoholClass(r dataset.Record) string {
	return DefaultClassPrefix + FormatNumber(r.Alcohol.Float())
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

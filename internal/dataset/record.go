package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Measure is a numeric wine measurement. Missing, null or non-numeric input
// decodes to NaN so that arithmetic on it propagates NaN instead of failing.
type Measure float64

// Float returns m as a float64.
func (m Measure) Float() float64 { return float64(m) }

// UnmarshalJSON accepts numbers, numeric strings and null.
func (m *Measure) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*m = Measure(math.NaN())
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*m = parseMeasure(str)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("measure %s: %w", s, err)
	}
	*m = Measure(f)
	return nil
}

// UnmarshalYAML accepts scalars of any YAML numeric form, numeric strings and null.
func (m *Measure) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("measure at line %d: expected scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*m = Measure(math.NaN())
		return nil
	}
	var f float64
	if err := value.Decode(&f); err == nil {
		*m = Measure(f)
		return nil
	}
	*m = parseMeasure(value.Value)
	return nil
}

func parseMeasure(s string) Measure {
	s = strings.TrimSpace(s)
	if s == "" {
		return Measure(math.NaN())
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Measure(math.NaN())
	}
	return Measure(f)
}

// Record is one wine sample. Alcohol carries the class indicator in the
// bundled dataset.
type Record struct {
	Alcohol             Measure `json:"Alcohol" yaml:"Alcohol"`
	MalicAcid           Measure `json:"Malic Acid" yaml:"Malic Acid"`
	Ash                 Measure `json:"Ash" yaml:"Ash"`
	AlcalinityOfAsh     Measure `json:"Alcalinity of ash" yaml:"Alcalinity of ash"`
	Magnesium           Measure `json:"Magnesium" yaml:"Magnesium"`
	TotalPhenols        Measure `json:"Total phenols" yaml:"Total phenols"`
	Flavanoids          Measure `json:"Flavanoids" yaml:"Flavanoids"`
	NonflavanoidPhenols Measure `json:"Nonflavanoid phenols" yaml:"Nonflavanoid phenols"`
	Proanthocyanins     Measure `json:"Proanthocyanins" yaml:"Proanthocyanins"`
	ColorIntensity      Measure `json:"Color intensity" yaml:"Color intensity"`
	Hue                 Measure `json:"Hue" yaml:"Hue"`
	OD280OD315          Measure `json:"OD280/OD315 of diluted wines" yaml:"OD280/OD315 of diluted wines"`
	Unknown             Measure `json:"Unknown" yaml:"Unknown"`
}

// Blank returns a record with every measurement set to NaN.
func Blank() Record {
	var r Record
	for _, f := range fields {
		*f.ref(&r) = Measure(math.NaN())
	}
	return r
}

// UnmarshalJSON leaves fields absent from the object as NaN.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	p := plain(Blank())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Record(p)
	return nil
}

// UnmarshalYAML leaves fields absent from the mapping as NaN.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	type plain Record
	p := plain(Blank())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = Record(p)
	return nil
}

// Field returns the value of the named field. Lookup ignores case.
func (r Record) Field(name string) (float64, bool) {
	f, ok := lookupField(name)
	if !ok {
		return 0, false
	}
	return f.ref(&r).Float(), true
}

type field struct {
	name string
	ref  func(*Record) *Measure
}

var fields = []field{
	{"Alcohol", func(r *Record) *Measure { return &r.Alcohol }},
	{"Malic Acid", func(r *Record) *Measure { return &r.MalicAcid }},
	{"Ash", func(r *Record) *Measure { return &r.Ash }},
	{"Alcalinity of ash", func(r *Record) *Measure { return &r.AlcalinityOfAsh }},
	{"Magnesium", func(r *Record) *Measure { return &r.Magnesium }},
	{"Total phenols", func(r *Record) *Measure { return &r.TotalPhenols }},
	{"Flavanoids", func(r *Record) *Measure { return &r.Flavanoids }},
	{"Nonflavanoid phenols", func(r *Record) *Measure { return &r.NonflavanoidPhenols }},
	{"Proanthocyanins", func(r *Record) *Measure { return &r.Proanthocyanins }},
	{"Color intensity", func(r *Record) *Measure { return &r.ColorIntensity }},
	{"Hue", func(r *Record) *Measure { return &r.Hue }},
	{"OD280/OD315 of diluted wines", func(r *Record) *Measure { return &r.OD280OD315 }},
	{"Unknown", func(r *Record) *Measure { return &r.Unknown }},
}

// FieldNames lists the record fields in dataset column order.
func FieldNames() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.name
	}
	return out
}

// CanonicalField returns the dataset spelling of a field name.
func CanonicalField(name string) (string, bool) {
	f, ok := lookupField(name)
	return f.name, ok
}

func lookupField(name string) (field, bool) {
	n := strings.TrimSpace(name)
	for _, f := range fields {
		if strings.EqualFold(f.name, n) {
			return f, true
		}
	}
	return field{}, false
}

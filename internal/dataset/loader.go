package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the source name reported for the bundled dataset.
const DefaultName = "wine.json (bundled)"

//go:embed data/wine.json
var bundled []byte

// Decoder decodes one dataset file format.
type Decoder interface {
	CanDecode(filename string) bool
	Decode(content []byte, filename string) ([]Record, error)
}

var registry []Decoder

// Register adds a decoder implementation to the registry.
func Register(d Decoder) {
	registry = append(registry, d)
}

// ErrUnsupportedFormat indicates no decoder handles the file extension.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// utf8BOM is the byte order mark spreadsheet tools prepend to text exports.
var utf8BOM = []byte("\xEF\xBB\xBF")

// Load reads a dataset file and decodes it with the first decoder that
// accepts its filename. A leading UTF-8 byte order mark is dropped.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	for _, d := range registry {
		if d.CanDecode(path) {
			recs, err := d.Decode(data, path)
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
			}
			return recs, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, strings.ToLower(filepath.Ext(path)))
}

// Default decodes the bundled wine dataset.
func Default() ([]Record, error) {
	recs, err := jsonDecoder{}.Decode(bundled, DefaultName)
	if err != nil {
		return nil, fmt.Errorf("decode bundled dataset: %w", err)
	}
	return recs, nil
}

func init() {
	Register(jsonDecoder{})
	Register(yamlDecoder{})
	Register(csvDecoder{})
	Register(xlsxDecoder{})
}

func hasSuffix(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, e := range exts {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}

package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlDecoder struct{}

func (yamlDecoder) CanDecode(filename string) bool {
	return hasSuffix(filename, ".yaml", ".yml")
}

func (yamlDecoder) Decode(content []byte, _ string) ([]Record, error) {
	var recs []Record
	if err := yaml.Unmarshal(content, &recs); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return recs, nil
}

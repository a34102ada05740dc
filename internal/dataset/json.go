package dataset

import (
	"encoding/json"
	"fmt"
)

type jsonDecoder struct{}

func (jsonDecoder) CanDecode(filename string) bool {
	return hasSuffix(filename, ".json")
}

func (jsonDecoder) Decode(content []byte, _ string) ([]Record, error) {
	var recs []Record
	if err := json.Unmarshal(content, &recs); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return recs, nil
}

// Package seed loads the catalog dataset from the embedded seed file or
// from a JSON file on disk.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

//go:embed dataset.json
var embedded []byte

// Default returns the embedded dataset, validated.
func Default() (*domain.Dataset, error) {
	ds, err := Decode(bytes.NewReader(embedded))
	if err != nil {
		return nil, fmt.Errorf("seed: embedded: %w", err)
	}
	return ds, nil
}

// LoadFile reads and validates a dataset from path.
func LoadFile(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a dataset document. Unknown fields are rejected so typos in
// hand-edited seed files surface at startup.
func Decode(r io.Reader) (*domain.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var ds domain.Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

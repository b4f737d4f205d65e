// Package data provides the catalog's static base tables.
package data

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mytheresa/product-categories/models"
)

//go:embed seed.yaml
var seed []byte

// Load decodes the embedded base tables.
func Load() (models.Tables, error) {
	return Decode(bytes.NewReader(seed))
}

// Decode reads base tables from YAML and validates them.
// Unknown keys are rejected so typos in the data file surface at startup.
func Decode(r io.Reader) (models.Tables, error) {
	var t models.Tables

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return models.Tables{}, fmt.Errorf("decode tables: %w", err)
	}

	if err := t.Validate(); err != nil {
		return models.Tables{}, err
	}
	return t, nil
}

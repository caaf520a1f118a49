package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"minirel/internal/domain"
	"minirel/internal/relation"
)

// catalog is the YAML fixture format: a list of tables, each with the
// raw specification strings of the schema and its rows.
type catalog struct {
	Tables []tableSpec `yaml:"tables"`
}

type tableSpec struct {
	Name       string  `yaml:"name"`
	Attributes string  `yaml:"attributes"`
	Domains    string  `yaml:"domains"`
	Key        string  `yaml:"key"`
	Rows       [][]any `yaml:"rows"`
}

// loadCatalog reads a YAML catalog and builds its tables, decoding each
// row's scalars under the declared domains.
func loadCatalog(path string) ([]*relation.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	tables := make([]*relation.Table, 0, len(cat.Tables))
	for _, spec := range cat.Tables {
		tbl, err := relation.New(spec.Name, spec.Attributes, spec.Domains, spec.Key)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", spec.Name, err)
		}
		domains := tbl.Schema().Domains()
		for i, raw := range spec.Rows {
			if len(raw) != len(domains) {
				return nil, fmt.Errorf("table %q row %d: got %d values, want %d",
					spec.Name, i, len(raw), len(domains))
			}
			vals := make([]domain.Value, len(raw))
			for j, cell := range raw {
				v, err := decodeValue(cell, domains[j])
				if err != nil {
					return nil, fmt.Errorf("table %q row %d column %d: %w", spec.Name, i, j, err)
				}
				vals[j] = v
			}
			tbl.Insert(vals...)
		}
		tables = append(tables, tbl)
	}
	return tables, nil
}

// decodeValue converts a YAML scalar into a value of the given domain.
// YAML decodes integers as int and reals as float64; integer cells are
// accepted for the floating domains.
func decodeValue(cell any, t domain.Type) (domain.Value, error) {
	switch t {
	case domain.Int32:
		n, ok := cell.(int)
		if !ok || int64(n) != int64(int32(n)) {
			return domain.Value{}, fmt.Errorf("%w: %v is not an Int32", domain.ErrValueConversion, cell)
		}
		return domain.NewInt32(int32(n)), nil
	case domain.Int64:
		n, ok := cell.(int)
		if !ok {
			return domain.Value{}, fmt.Errorf("%w: %v is not an Int64", domain.ErrValueConversion, cell)
		}
		return domain.NewInt64(int64(n)), nil
	case domain.Float32:
		f, ok := asFloat(cell)
		if !ok {
			return domain.Value{}, fmt.Errorf("%w: %v is not a Float32", domain.ErrValueConversion, cell)
		}
		return domain.NewFloat32(float32(f)), nil
	case domain.Float64:
		f, ok := asFloat(cell)
		if !ok {
			return domain.Value{}, fmt.Errorf("%w: %v is not a Float64", domain.ErrValueConversion, cell)
		}
		return domain.NewFloat64(f), nil
	case domain.Char:
		s, ok := cell.(string)
		if !ok || s == "" {
			return domain.Value{}, fmt.Errorf("%w: %v is not a Char", domain.ErrValueConversion, cell)
		}
		return domain.Parse(s, domain.Char)
	default:
		s, ok := cell.(string)
		if !ok {
			return domain.Value{}, fmt.Errorf("%w: %v is not a String", domain.ErrValueConversion, cell)
		}
		return domain.NewString(s), nil
	}
}

func asFloat(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

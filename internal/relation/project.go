package relation

import (
	"minirel/internal/domain"
)

// Project returns a new table keeping only the given attributes, in the
// given order. Projection has set semantics: duplicate derived rows are
// collapsed, first occurrence kept. The original key is retained when
// the projected attributes cover it; otherwise the key becomes the full
// projected list, since a proper subset no longer guarantees uniqueness.
// Returns nil if an attribute is unknown or the list is malformed.
func (t *Table) Project(attrStr string) *Table {
	attrs := splitSpec(attrStr)
	positions, err := t.schema.locate(attrs)
	if err != nil {
		t.reporter.Flaw("project", err)
		return nil
	}

	domains := make([]domain.Type, len(positions))
	for j, pos := range positions {
		domains[j] = t.schema.domains[pos]
	}
	key := attrs
	if containsAll(attrs, t.schema.key) {
		key = t.schema.key
	}
	schema, err := NewSchema(attrs, domains, key)
	if err != nil {
		t.reporter.Flaw("project", err)
		return nil
	}

	rows := make([]Tuple, 0, len(t.rows))
	seen := make(map[string]struct{}, len(t.rows))
	for _, row := range t.rows {
		projected := make(Tuple, len(positions))
		for j, pos := range positions {
			projected[j] = row[pos]
		}
		k := projected.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		rows = append(rows, projected)
	}
	return t.derive(schema, rows)
}

// containsAll checks if every name in sub appears in set.
func containsAll(set, sub []string) bool {
	for _, name := range sub {
		found := false
		for _, s := range set {
			if s == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

package relation

import "fmt"

// compatible checks that the two tables have the same arity and, position
// by position, the same domain tags. Attribute names are not compared.
// The mismatch reason is reported under the given operation name.
func (t *Table) compatible(op string, t2 *Table) bool {
	if t.schema.Arity() != t2.schema.Arity() {
		return t.reporter.Flaw(op, fmt.Errorf("%w: tables have different arity (%d vs %d)",
			ErrIncompatible, t.schema.Arity(), t2.schema.Arity()))
	}
	for j := range t.schema.domains {
		if t.schema.domains[j] != t2.schema.domains[j] {
			return t.reporter.Flaw(op, fmt.Errorf("%w: tables disagree on domain %d (%v vs %v)",
				ErrIncompatible, j, t.schema.domains[j], t2.schema.domains[j]))
		}
	}
	return true
}

// Union returns the set union of two compatible tables under the left
// operand's schema: left rows first in their order, then right rows not
// already present, first occurrence kept. Returns nil if the tables are
// incompatible.
func (t *Table) Union(t2 *Table) *Table {
	if !t.compatible("union", t2) {
		return nil
	}
	rows := make([]Tuple, 0, len(t.rows)+len(t2.rows))
	seen := make(map[string]struct{}, len(t.rows)+len(t2.rows))
	for _, source := range [][]Tuple{t.rows, t2.rows} {
		for _, row := range source {
			k := row.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, row)
		}
	}
	return t.derive(t.schema.clone(), rows)
}

// Minus returns the difference of two compatible tables under the left
// operand's schema: the left rows for which no element-wise-equal row
// exists on the right, in left order. Returns nil if the tables are
// incompatible.
func (t *Table) Minus(t2 *Table) *Table {
	if !t.compatible("minus", t2) {
		return nil
	}
	exclude := make(map[string]struct{}, len(t2.rows))
	for _, row := range t2.rows {
		exclude[row.key()] = struct{}{}
	}
	rows := make([]Tuple, 0, len(t.rows))
	for _, row := range t.rows {
		if _, hit := exclude[row.key()]; !hit {
			rows = append(rows, row)
		}
	}
	return t.derive(t.schema.clone(), rows)
}

package relation

// Select returns a new table holding the rows for which the predicate is
// true, in their original order, under the operand's schema.
func (t *Table) Select(pred func(Tuple) bool) *Table {
	rows := make([]Tuple, 0, len(t.rows))
	for _, row := range t.rows {
		if pred(row) {
			rows = append(rows, row)
		}
	}
	return t.derive(t.schema.clone(), rows)
}

// SelectWhere returns a new table holding the rows satisfying a
// condition "attr op literal" with op one of == != < <= > >=. String
// literals may be single-quoted. Returns nil if the condition does not
// compile against the schema.
func (t *Table) SelectWhere(cond string) *Table {
	col, op, lit, err := t.schema.compileCondition(cond)
	if err != nil {
		t.reporter.Flaw("select", err)
		return nil
	}
	rows := make([]Tuple, 0, len(t.rows))
	for _, row := range t.rows {
		cmp, err := row[col].CompareTo(lit)
		if err != nil {
			t.reporter.Flaw("select", err)
			return nil
		}
		if op.Satisfied(cmp) {
			rows = append(rows, row)
		}
	}
	return t.derive(t.schema.clone(), rows)
}

// Package relation implements an in-memory relational table and the five
// basic relational algebra operators over it: project, select, union,
// minus and join (equi, theta and natural variants). Operators never
// mutate their operands; each one materializes a brand-new table named
// through the table's Namer. Invalid inputs are reported through the
// diagnostics channel and surface as a nil result table.
package relation

import (
	"fmt"
	"strings"

	"minirel/internal/diag"
	"minirel/internal/domain"
)

// Tuple is one fixed-arity row of scalar values, position-wise conformant
// with the owning table's schema.
type Tuple []domain.Value

// Table couples a schema, a tuple store and a display name. Rows are
// appended only through Insert; applying an operator treats the table as
// immutable.
type Table struct {
	name     string
	schema   *Schema
	rows     []Tuple
	namer    *Namer
	reporter *diag.Reporter
}

var (
	defaultNamer    = NewNamer()
	defaultReporter = diag.NewReporter(nil)
)

// New creates an empty table from raw specification strings, using the
// process-wide namer and diagnostics reporter.
func New(name, attrText, domainText, keyText string) (*Table, error) {
	return NewWith(defaultNamer, defaultReporter, name, attrText, domainText, keyText)
}

// NewWith creates an empty table with an explicit namer and reporter,
// both inherited by every table derived from it.
func NewWith(namer *Namer, reporter *diag.Reporter, name, attrText, domainText, keyText string) (*Table, error) {
	schema, err := ParseSchema(attrText, domainText, keyText)
	if err != nil {
		reporter.Flaw("new", err)
		return nil, err
	}
	return &Table{
		name:     name,
		schema:   schema,
		rows:     make([]Tuple, 0),
		namer:    namer,
		reporter: reporter,
	}, nil
}

// Name returns the table's display name.
func (t *Table) Name() string {
	return t.name
}

// Schema returns the table's schema.
func (t *Table) Schema() *Schema {
	return t.schema
}

// Rows returns a copy of the row sequence. The tuples themselves are
// shared; values are immutable.
func (t *Table) Rows() []Tuple {
	return append([]Tuple(nil), t.rows...)
}

// Insert appends a tuple and returns the table to enable chaining. The
// tuple must match the schema's arity and, position by position, its
// domain tags; a mismatch is reported and the row is not appended.
func (t *Table) Insert(vals ...domain.Value) *Table {
	if len(vals) != t.schema.Arity() {
		t.reporter.Flaw("insert", fmt.Errorf("%w: got %d values, schema has %d attributes",
			ErrTupleTypeMismatch, len(vals), t.schema.Arity()))
		return t
	}
	for i, v := range vals {
		if v.Type() != t.schema.domains[i] {
			t.reporter.Flaw("insert", fmt.Errorf("%w: attribute %q wants %v, got %v",
				ErrTupleTypeMismatch, t.schema.attrs[i], t.schema.domains[i], v.Type()))
			return t
		}
	}
	t.rows = append(t.rows, append(Tuple(nil), vals...))
	return t
}

// derive materializes an operator result: a new table owning schema and
// rows, named by the next counter value, inheriting namer and reporter.
func (t *Table) derive(schema *Schema, rows []Tuple) *Table {
	return &Table{
		name:     t.namer.Next(t.name),
		schema:   schema,
		rows:     rows,
		namer:    t.namer,
		reporter: t.reporter,
	}
}

// key returns a canonical encoding of the tuple for element-wise set
// membership tests.
func (tup Tuple) key() string {
	var b strings.Builder
	for i, v := range tup {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(v.Key())
	}
	return b.String()
}

// equals checks element-wise equality with another tuple.
func (tup Tuple) equals(other Tuple) bool {
	if len(tup) != len(other) {
		return false
	}
	for i := range tup {
		if !tup[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

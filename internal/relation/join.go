package relation

import (
	"fmt"

	"minirel/internal/domain"
)

// colRef locates a result column in one of the two operand rows.
type colRef struct {
	right bool
	pos   int
}

// joinSpec is the tagged part of a join: the match predicate and the
// result column assembly. All three variants run through the same
// nested-loop driver and differ only in their spec.
type joinSpec struct {
	match  func(l, r Tuple) (bool, error)
	schema *Schema
	cols   []colRef
}

// join is the shared nested-loop driver: every left row is tested
// against every right row and each matching pair emits one assembled
// output row. O(|left|*|right|); matched pairs only (inner join).
func (t *Table) join(t2 *Table, spec joinSpec) *Table {
	rows := make([]Tuple, 0)
	for _, l := range t.rows {
		for _, r := range t2.rows {
			ok, err := spec.match(l, r)
			if err != nil {
				t.reporter.Flaw("join", err)
				return nil
			}
			if !ok {
				continue
			}
			row := make(Tuple, len(spec.cols))
			for i, c := range spec.cols {
				if c.right {
					row[i] = r[c.pos]
				} else {
					row[i] = l[c.pos]
				}
			}
			rows = append(rows, row)
		}
	}
	return t.derive(spec.schema, rows)
}

// concatSchema builds the result schema of an equi or theta join: left
// attributes followed by right attributes, with any right-hand name
// already present on the left suffixed "2". The result keeps the left
// operand's key.
func (t *Table) concatSchema(t2 *Table) (*Schema, error) {
	attrs := make([]string, 0, t.schema.Arity()+t2.schema.Arity())
	attrs = append(attrs, t.schema.attrs...)
	for _, a := range t2.schema.attrs {
		if t.schema.HasAttr(a) {
			a += "2"
		}
		attrs = append(attrs, a)
	}
	domains := append(t.schema.Domains(), t2.schema.domains...)
	return NewSchema(attrs, domains, t.schema.key)
}

// concatCols assembles every left column followed by every right column.
func concatCols(leftArity, rightArity int) []colRef {
	cols := make([]colRef, 0, leftArity+rightArity)
	for i := 0; i < leftArity; i++ {
		cols = append(cols, colRef{pos: i})
	}
	for i := 0; i < rightArity; i++ {
		cols = append(cols, colRef{right: true, pos: i})
	}
	return cols
}

// EquiJoin joins two tables on pairwise equality of the named attribute
// lists, attrs1 resolved against the receiver and attrs2 against t2.
// Returns nil if the lists are malformed, an attribute is unknown, or a
// matched pair disagrees on domain.
func (t *Table) EquiJoin(attrs1, attrs2 string, t2 *Table) *Table {
	a1 := splitSpec(attrs1)
	a2 := splitSpec(attrs2)
	if len(a1) != len(a2) {
		t.reporter.Flaw("join", fmt.Errorf("%w: attribute lists differ in length (%d vs %d)",
			ErrSchema, len(a1), len(a2)))
		return nil
	}
	lpos, err := t.schema.locate(a1)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	rpos, err := t2.schema.locate(a2)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	for i := range lpos {
		if t.schema.domains[lpos[i]] != t2.schema.domains[rpos[i]] {
			t.reporter.Flaw("join", fmt.Errorf("%w: %q is %v but %q is %v",
				domain.ErrDomainMismatch, a1[i], t.schema.domains[lpos[i]], a2[i], t2.schema.domains[rpos[i]]))
			return nil
		}
	}
	schema, err := t.concatSchema(t2)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	return t.join(t2, joinSpec{
		match: func(l, r Tuple) (bool, error) {
			for i := range lpos {
				if !l[lpos[i]].Equals(r[rpos[i]]) {
					return false, nil
				}
			}
			return true, nil
		},
		schema: schema,
		cols:   concatCols(t.schema.Arity(), t2.schema.Arity()),
	})
}

// ThetaJoin joins two tables on a condition "attr1 op attr2", attr1
// resolved against the receiver and attr2 against t2, with op one of
// == != < <= > >=. The attributes must share a domain; there is no
// implicit coercion. Returns nil on a malformed or unresolvable
// condition.
func (t *Table) ThetaJoin(cond string, t2 *Table) *Table {
	attr1, opTok, attr2, err := splitCondition(cond)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	lcol, ok := t.schema.col[attr1]
	if !ok {
		t.reporter.Flaw("join", fmt.Errorf("%w: %q", ErrUnknownAttribute, attr1))
		return nil
	}
	rcol, ok := t2.schema.col[attr2]
	if !ok {
		t.reporter.Flaw("join", fmt.Errorf("%w: %q", ErrUnknownAttribute, attr2))
		return nil
	}
	op, err := domain.OperatorOf(opTok)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	if t.schema.domains[lcol] != t2.schema.domains[rcol] {
		t.reporter.Flaw("join", fmt.Errorf("%w: %q is %v but %q is %v",
			domain.ErrDomainMismatch, attr1, t.schema.domains[lcol], attr2, t2.schema.domains[rcol]))
		return nil
	}
	schema, err := t.concatSchema(t2)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	return t.join(t2, joinSpec{
		match: func(l, r Tuple) (bool, error) {
			cmp, err := l[lcol].CompareTo(r[rcol])
			if err != nil {
				return false, err
			}
			return op.Satisfied(cmp), nil
		},
		schema: schema,
		cols:   concatCols(t.schema.Arity(), t2.schema.Arity()),
	})
}

// NaturalJoin joins two tables on equality of every attribute name they
// share, collapsing each shared column to a single one taken from the
// left. With no shared attributes it degenerates to the cartesian
// product. Result columns: shared once, then left-only, then right-only.
// Returns nil if a shared attribute's domains disagree.
func (t *Table) NaturalJoin(t2 *Table) *Table {
	var (
		sharedL, sharedR []int
		attrs            []string
		domains          []domain.Type
		cols             []colRef
	)
	for i, a := range t.schema.attrs {
		j, shared := t2.schema.col[a]
		if !shared {
			continue
		}
		if t.schema.domains[i] != t2.schema.domains[j] {
			t.reporter.Flaw("join", fmt.Errorf("%w: shared attribute %q is %v on the left but %v on the right",
				domain.ErrDomainMismatch, a, t.schema.domains[i], t2.schema.domains[j]))
			return nil
		}
		sharedL = append(sharedL, i)
		sharedR = append(sharedR, j)
		attrs = append(attrs, a)
		domains = append(domains, t.schema.domains[i])
		cols = append(cols, colRef{pos: i})
	}
	for i, a := range t.schema.attrs {
		if t2.schema.HasAttr(a) {
			continue
		}
		attrs = append(attrs, a)
		domains = append(domains, t.schema.domains[i])
		cols = append(cols, colRef{pos: i})
	}
	for j, a := range t2.schema.attrs {
		if t.schema.HasAttr(a) {
			continue
		}
		attrs = append(attrs, a)
		domains = append(domains, t2.schema.domains[j])
		cols = append(cols, colRef{right: true, pos: j})
	}

	key := t.schema.key
	if len(key) == 0 {
		key = attrs
	}
	schema, err := NewSchema(attrs, domains, key)
	if err != nil {
		t.reporter.Flaw("join", err)
		return nil
	}
	return t.join(t2, joinSpec{
		match: func(l, r Tuple) (bool, error) {
			for i := range sharedL {
				if !l[sharedL[i]].Equals(r[sharedR[i]]) {
					return false, nil
				}
			}
			return true, nil
		},
		schema: schema,
		cols:   cols,
	})
}

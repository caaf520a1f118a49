package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minirel/internal/domain"
)

func TestNewTable(t *testing.T) {
	env := newTestEnv()
	tbl := env.table(t, "deposit", "bname accno cname balance", "String Integer String Double", "accno")
	assert.Equal(t, "deposit", tbl.Name())
	assert.Equal(t, 4, tbl.Schema().Arity())
	assert.Empty(t, tbl.Rows())
}

func TestNewTableBadSpec(t *testing.T) {
	env := newTestEnv()
	_, err := NewWith(env.namer, env.reporter, "bad", "a b", "String", "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, env.out.String(), "FLAW in new")
}

func TestInsert(t *testing.T) {
	env := newTestEnv()
	tbl := env.table(t, "customer", "cname street ccity", "String String String", "cname")

	// Insert returns the table to enable chaining
	got := tbl.Insert(str("Peter"), str("Maple St"), str("Athens")).
		Insert(str("Paul"), str("Oak St"), str("Athens"))
	assert.Same(t, tbl, got)
	require.Len(t, tbl.Rows(), 2)
	assert.NoError(t, env.reporter.LastErr())
}

func TestInsertArityMismatch(t *testing.T) {
	env := newTestEnv()
	tbl := env.table(t, "customer", "cname street ccity", "String String String", "cname")

	got := tbl.Insert(str("Peter"), str("Maple St"))
	assert.Same(t, tbl, got)
	assert.Empty(t, tbl.Rows())
	assert.ErrorIs(t, env.reporter.LastErr(), ErrTupleTypeMismatch)
	assert.Contains(t, env.out.String(), "FLAW in insert")
}

func TestInsertTypeMismatch(t *testing.T) {
	env := newTestEnv()
	tbl := env.table(t, "deposit", "bname accno cname balance", "String Integer String Double", "accno")

	// accno is an Int32 attribute
	tbl.Insert(str("Downtown"), str("901"), str("Peter"), f64(1000.0))
	assert.Empty(t, tbl.Rows())
	assert.ErrorIs(t, env.reporter.LastErr(), ErrTupleTypeMismatch)

	// Int64 does not coerce to Int32
	tbl.Insert(str("Downtown"), domain.NewInt64(901), str("Peter"), f64(1000.0))
	assert.Empty(t, tbl.Rows())
	assert.ErrorIs(t, env.reporter.LastErr(), ErrTupleTypeMismatch)
}

func TestInsertCopiesTuple(t *testing.T) {
	env := newTestEnv()
	tbl := env.table(t, "pair", "a b", "Int32 Int32", "a")

	vals := []domain.Value{i32(1), i32(2)}
	tbl.Insert(vals...)
	vals[0] = i32(99)

	requireRows(t, tbl, []Tuple{row(i32(1), i32(2))})
}

func TestRowsReturnsCopy(t *testing.T) {
	env := newTestEnv()
	tbl := env.table(t, "pair", "a b", "Int32 Int32", "a").Insert(i32(1), i32(2))

	rows := tbl.Rows()
	rows[0] = row(i32(9), i32(9))
	requireRows(t, tbl, []Tuple{row(i32(1), i32(2))})
}

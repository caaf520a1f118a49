package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minirel/internal/domain"
)

func (e *testEnv) loan(t *testing.T) *Table {
	t.Helper()
	return e.table(t, "loan", "bname loanno cname amount", "String Integer String Double", "loanno").
		Insert(str("Main"), i32(902), str("Paul"), f64(2000.0)).
		Insert(str("Alps"), i32(1002), str("Peter"), f64(2000.0))
}

func TestUnion(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	loan := env.loan(t)

	// The Main/902/Paul row exists in both tables and appears once;
	// left rows come first, in left order
	res := deposit.Union(loan)
	requireRows(t, res, []Tuple{
		row(str("Downtown"), i32(901), str("Peter"), f64(1000.0)),
		row(str("Main"), i32(902), str("Paul"), f64(2000.0)),
		row(str("Alps"), i32(903), str("Paul"), f64(3000.0)),
		row(str("Alps"), i32(1002), str("Peter"), f64(2000.0)),
	})

	// Output schema is the left operand's
	assert.Equal(t, deposit.Schema().Attributes(), res.Schema().Attributes())

	// Operands are untouched
	assert.Len(t, deposit.Rows(), 3)
	assert.Len(t, loan.Rows(), 2)
}

func TestUnionWithSelf(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)

	res := deposit.Union(deposit)
	requireRows(t, res, deposit.Rows())
}

func TestMinus(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	loan := env.loan(t)

	res := deposit.Minus(loan)
	requireRows(t, res, []Tuple{
		row(str("Downtown"), i32(901), str("Peter"), f64(1000.0)),
		row(str("Alps"), i32(903), str("Paul"), f64(3000.0)),
	})
}

func TestMinusSelfIsEmpty(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)

	res := deposit.Minus(deposit)
	require.NotNil(t, res)
	assert.Empty(t, res.Rows())
}

func TestIncompatibleArity(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	assert.Nil(t, deposit.Union(customer))
	assert.ErrorIs(t, env.reporter.LastErr(), ErrIncompatible)
	assert.Contains(t, env.out.String(), "different arity")

	assert.Nil(t, deposit.Minus(customer))
	assert.Contains(t, env.out.String(), "FLAW in minus")
}

func TestIncompatibleDomain(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)

	// Same arity, but loanno is an Int64 here
	other := env.table(t, "other", "bname loanno cname amount", "String Long String Double", "loanno").
		Insert(str("Main"), domain.NewInt64(1), str("Paul"), f64(1.0))

	assert.Nil(t, deposit.Union(other))
	assert.ErrorIs(t, env.reporter.LastErr(), ErrIncompatible)
	assert.Contains(t, env.out.String(), "disagree on domain 1")
}

func TestCompatibilityIgnoresNames(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	loan := env.loan(t)

	// deposit and loan differ in attribute names but not domains
	res := deposit.Union(loan)
	require.NotNil(t, res)
}

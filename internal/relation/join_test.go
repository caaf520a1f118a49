package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minirel/internal/domain"
)

func TestEquiJoin(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	res := deposit.EquiJoin("cname", "cname", customer)
	require.NotNil(t, res)

	// The duplicated cname gets its right-hand occurrence renamed
	assert.Equal(t, []string{"bname", "accno", "cname", "balance", "cname2", "street", "ccity"},
		res.Schema().Attributes())
	assert.Equal(t, []string{"accno"}, res.Schema().Key())

	// Only Peter appears in both tables
	requireRows(t, res, []Tuple{
		row(str("Downtown"), i32(901), str("Peter"), f64(1000.0), str("Peter"), str("Maple St"), str("Athens")),
	})
}

func TestEquiJoinMultiAttribute(t *testing.T) {
	env := newTestEnv()
	left := env.table(t, "left", "a b", "Int32 String", "a").
		Insert(i32(1), str("x")).
		Insert(i32(2), str("y"))
	right := env.table(t, "right", "c d", "Int32 String", "c").
		Insert(i32(1), str("x")).
		Insert(i32(1), str("z"))

	res := left.EquiJoin("a b", "c d", right)
	requireRows(t, res, []Tuple{
		row(i32(1), str("x"), i32(1), str("x")),
	})
}

func TestEquiJoinFailures(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	assert.Nil(t, deposit.EquiJoin("cname balance", "cname", customer))
	assert.ErrorIs(t, env.reporter.LastErr(), ErrSchema)

	assert.Nil(t, deposit.EquiJoin("nosuch", "cname", customer))
	assert.ErrorIs(t, env.reporter.LastErr(), ErrUnknownAttribute)

	// accno is Int32, cname is String: no coercion
	assert.Nil(t, deposit.EquiJoin("accno", "cname", customer))
	assert.ErrorIs(t, env.reporter.LastErr(), domain.ErrDomainMismatch)
	assert.Contains(t, env.out.String(), "FLAW in join")
}

func TestThetaJoin(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	// Equality theta join matches the equi-join result
	res := deposit.ThetaJoin("cname == cname", customer)
	requireRows(t, res, []Tuple{
		row(str("Downtown"), i32(901), str("Peter"), f64(1000.0), str("Peter"), str("Maple St"), str("Athens")),
	})
	assert.Equal(t, []string{"bname", "accno", "cname", "balance", "cname2", "street", "ccity"},
		res.Schema().Attributes())
}

func TestThetaJoinOrdering(t *testing.T) {
	env := newTestEnv()
	left := env.table(t, "nums", "n", "Int32", "n").
		Insert(i32(1)).
		Insert(i32(3))
	right := env.table(t, "bounds", "m", "Int32", "m").
		Insert(i32(2))

	res := left.ThetaJoin("n < m", right)
	requireRows(t, res, []Tuple{row(i32(1), i32(2))})

	res = left.ThetaJoin("n >= m", right)
	requireRows(t, res, []Tuple{row(i32(3), i32(2))})
}

func TestThetaJoinFailures(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	assert.Nil(t, deposit.ThetaJoin("cname = cname", customer))
	assert.ErrorIs(t, env.reporter.LastErr(), domain.ErrUnsupportedOperator)

	assert.Nil(t, deposit.ThetaJoin("balance == cname", customer))
	assert.ErrorIs(t, env.reporter.LastErr(), domain.ErrDomainMismatch)

	assert.Nil(t, deposit.ThetaJoin("cname == cname extra", customer))
	assert.ErrorIs(t, env.reporter.LastErr(), ErrCondition)
}

func TestNaturalJoin(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	res := deposit.NaturalJoin(customer)
	require.NotNil(t, res)

	// Shared attributes first and only once, then left-only, then
	// right-only
	assert.Equal(t, []string{"cname", "bname", "accno", "balance", "street", "ccity"},
		res.Schema().Attributes())
	requireRows(t, res, []Tuple{
		row(str("Peter"), str("Downtown"), i32(901), f64(1000.0), str("Maple St"), str("Athens")),
	})
}

func TestNaturalJoinCardinalityMatchesEquiJoin(t *testing.T) {
	env := newTestEnv()
	deposit := env.deposit(t)
	customer := env.customer(t)

	equi := deposit.EquiJoin("cname", "cname", customer)
	natural := deposit.NaturalJoin(customer)
	require.NotNil(t, equi)
	require.NotNil(t, natural)
	assert.Len(t, natural.Rows(), len(equi.Rows()))
	assert.Equal(t, equi.Schema().Arity()-1, natural.Schema().Arity())
}

func TestNaturalJoinCartesian(t *testing.T) {
	env := newTestEnv()
	left := env.table(t, "colors", "color", "String", "color").
		Insert(str("red")).
		Insert(str("blue"))
	right := env.table(t, "sizes", "size", "Int32", "size").
		Insert(i32(1)).
		Insert(i32(2))

	// No shared attributes: every pair matches
	res := left.NaturalJoin(right)
	requireRows(t, res, []Tuple{
		row(str("red"), i32(1)),
		row(str("red"), i32(2)),
		row(str("blue"), i32(1)),
		row(str("blue"), i32(2)),
	})
}

func TestNaturalJoinDomainMismatch(t *testing.T) {
	env := newTestEnv()
	left := env.table(t, "l", "id", "Int32", "id").Insert(i32(1))
	right := env.table(t, "r", "id name", "Long String", "id").
		Insert(domain.NewInt64(1), str("x"))

	assert.Nil(t, left.NaturalJoin(right))
	assert.ErrorIs(t, env.reporter.LastErr(), domain.ErrDomainMismatch)
}

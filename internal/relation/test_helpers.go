package relation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"minirel/internal/diag"
	"minirel/internal/domain"
)

// testEnv bundles a fresh namer and a buffered reporter so tests get
// deterministic derived names and can inspect diagnostics output.
type testEnv struct {
	namer    *Namer
	reporter *diag.Reporter
	out      *bytes.Buffer
}

func newTestEnv() *testEnv {
	out := &bytes.Buffer{}
	return &testEnv{
		namer:    NewNamer(),
		reporter: diag.NewReporter(out),
		out:      out,
	}
}

func (e *testEnv) table(t *testing.T, name, attrs, domains, key string) *Table {
	t.Helper()
	tbl, err := NewWith(e.namer, e.reporter, name, attrs, domains, key)
	require.NoError(t, err)
	return tbl
}

// deposit builds the three-row deposit relation used across the operator
// tests.
func (e *testEnv) deposit(t *testing.T) *Table {
	t.Helper()
	return e.table(t, "deposit", "bname accno cname balance", "String Integer String Double", "accno").
		Insert(str("Downtown"), i32(901), str("Peter"), f64(1000.0)).
		Insert(str("Main"), i32(902), str("Paul"), f64(2000.0)).
		Insert(str("Alps"), i32(903), str("Paul"), f64(3000.0))
}

func (e *testEnv) customer(t *testing.T) *Table {
	t.Helper()
	return e.table(t, "customer", "cname street ccity", "String String String", "cname").
		Insert(str("Peter"), str("Maple St"), str("Athens")).
		Insert(str("Mary"), str("Elm St"), str("Winder"))
}

func str(v string) domain.Value { return domain.NewString(v) }

func i32(v int32) domain.Value { return domain.NewInt32(v) }

func f64(v float64) domain.Value { return domain.NewFloat64(v) }

func row(vs ...domain.Value) Tuple { return Tuple(vs) }

// requireRows asserts that the table holds exactly the given rows in
// order, by element-wise value equality.
func requireRows(t *testing.T, tbl *Table, want []Tuple) {
	t.Helper()
	require.NotNil(t, tbl)
	got := tbl.Rows()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, got[i].equals(want[i]), "row %d: got %v, want %v", i, got[i], want[i])
	}
}

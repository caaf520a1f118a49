package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterFlaw(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	assert.NoError(t, r.LastErr())

	errBad := errors.New("tables have different arity")
	ok := r.Flaw("union", errBad)
	assert.False(t, ok)
	assert.Equal(t, "FLAW in union: tables have different arity\n", buf.String())

	require.Error(t, r.LastErr())
	assert.ErrorIs(t, r.LastErr(), errBad)
}

func TestReporterLastErrOverwritten(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	first := errors.New("first")
	second := errors.New("second")
	r.Flaw("project", first)
	r.Flaw("select", second)
	assert.ErrorIs(t, r.LastErr(), second)
}

func TestReporterSetOutput(t *testing.T) {
	var a, b bytes.Buffer
	r := NewReporter(&a)
	r.Flaw("insert", errors.New("one"))
	r.SetOutput(&b)
	r.Flaw("insert", errors.New("two"))

	assert.Contains(t, a.String(), "one")
	assert.NotContains(t, a.String(), "two")
	assert.Contains(t, b.String(), "two")
}

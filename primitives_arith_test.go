package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callPrim(ev *Evaluator, name string, args ...Value) Result {
	entry, ok := ev.Prims.Find(name)
	if !ok {
		panic("no such primitive: " + name)
	}
	return entry.Fn(ev, args)
}

func TestPrimArithmeticBasics(t *testing.T) {
	ev := newTestEvaluator()
	assert.Equal(t, float32(7), callPrim(ev, "sum", NumberValue(3), NumberValue(4)).Value.Number)
	assert.Equal(t, float32(-1), callPrim(ev, "difference", NumberValue(3), NumberValue(4)).Value.Number)
	assert.Equal(t, float32(12), callPrim(ev, "product", NumberValue(3), NumberValue(4)).Value.Number)
	assert.Equal(t, float32(2), callPrim(ev, "quotient", NumberValue(8), NumberValue(4)).Value.Number)
	assert.Equal(t, float32(1), callPrim(ev, "remainder", NumberValue(7), NumberValue(3)).Value.Number)
	assert.Equal(t, float32(-5), callPrim(ev, "minus", NumberValue(5)).Value.Number)
}

func TestPrimQuotientByZero(t *testing.T) {
	ev := newTestEvaluator()
	res := callPrim(ev, "quotient", NumberValue(1), NumberValue(0))
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ErrDivideByZero, res.Err.Kind)
}

func TestPrimComparisonAndEquality(t *testing.T) {
	ev := newTestEvaluator()
	res := callPrim(ev, "lessp", NumberValue(1), NumberValue(2))
	got, ok := AsBool(ev.Mem, res.Value)
	require.True(t, ok)
	assert.True(t, got)

	res = callPrim(ev, "equalp", NumberValue(1), NumberValue(1))
	got, _ = AsBool(ev.Mem, res.Value)
	assert.True(t, got)

	res = callPrim(ev, "notequalp", NumberValue(1), NumberValue(2))
	got, _ = AsBool(ev.Mem, res.Value)
	assert.True(t, got)
}

func TestPrimBooleanConnectives(t *testing.T) {
	ev := newTestEvaluator()
	tru := BoolValue(ev.Mem, true)
	fls := BoolValue(ev.Mem, false)

	res := callPrim(ev, "and", tru, fls)
	got, _ := AsBool(ev.Mem, res.Value)
	assert.False(t, got)

	res = callPrim(ev, "or", tru, fls)
	got, _ = AsBool(ev.Mem, res.Value)
	assert.True(t, got)

	res = callPrim(ev, "not", fls)
	got, _ = AsBool(ev.Mem, res.Value)
	assert.True(t, got)
}

func TestPrimArithmeticRejectsNonNumber(t *testing.T) {
	ev := newTestEvaluator()
	word := WordValue(ev.Mem.AtomString("abc"))
	res := callPrim(ev, "sum", word, NumberValue(1))
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ErrDoesntLikeInput, res.Err.Kind)
}

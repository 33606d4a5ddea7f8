package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualNumbers(t *testing.T) {
	mem := NewMemory(64, 256)
	assert.True(t, Equal(mem, NumberValue(3), NumberValue(3)))
	assert.False(t, Equal(mem, NumberValue(3), NumberValue(4)))
}

func TestEqualWordsByIdentity(t *testing.T) {
	mem := NewMemory(64, 256)
	a := WordValue(mem.AtomString("hello"))
	b := WordValue(mem.AtomString("hello"))
	assert.True(t, Equal(mem, a, b))
}

func TestEqualListsStructural(t *testing.T) {
	mem := NewMemory(64, 256)
	one := mem.AtomString("one")
	two := mem.AtomString("two")
	a := mem.Cons(one, mem.Cons(two, Nil))
	b := mem.Cons(one, mem.Cons(two, Nil))
	assert.True(t, Equal(mem, ListValue(a), ListValue(b)))

	c := mem.Cons(two, mem.Cons(one, Nil))
	assert.False(t, Equal(mem, ListValue(a), ListValue(c)))
}

func TestBoolValueRoundTrip(t *testing.T) {
	mem := NewMemory(64, 256)
	v := BoolValue(mem, true)
	got, ok := AsBool(mem, v)
	require.True(t, ok)
	assert.True(t, got)

	v = BoolValue(mem, false)
	got, ok = AsBool(mem, v)
	require.True(t, ok)
	assert.False(t, got)
}

func TestAsBoolCaseInsensitive(t *testing.T) {
	mem := NewMemory(64, 256)
	v := WordValue(mem.AtomString("TRUE"))
	got, ok := AsBool(mem, v)
	require.True(t, ok)
	assert.True(t, got)
}

func TestAsBoolRejectsNonBooleanWord(t *testing.T) {
	mem := NewMemory(64, 256)
	v := WordValue(mem.AtomString("maybe"))
	_, ok := AsBool(mem, v)
	assert.False(t, ok)
}

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		err  EvalError
		want string
	}{
		{EvalError{Kind: ErrDivideByZero}, "Can't divide by zero"},
		{EvalError{Kind: ErrNoValue, Proc: "x"}, "x has no value"},
		{EvalError{Kind: ErrDoesntLikeInput, Proc: "sum", Arg: `"foo"`}, `sum doesn't like "foo" as input`},
		{EvalError{Kind: ErrDontKnowHow, Proc: "frobnicate"}, "I don't know how to frobnicate"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestResultIsErrorLike(t *testing.T) {
	assert.False(t, OkResult(NumberValue(1)).IsErrorLike())
	assert.False(t, NoneResult().IsErrorLike())
	assert.True(t, StopResult().IsErrorLike())
	assert.True(t, ErrorResult(ErrDivideByZero, "", "").IsErrorLike())
	assert.True(t, ThrowResult("toplevel", NoneValue, false).IsErrorLike())
}

func TestResultSetErrorProcOnlyFillsWhenEmpty(t *testing.T) {
	r := ErrorResult(ErrDontKnowHow, "", "")
	r = r.SetErrorProc("bf")
	assert.Equal(t, "bf", r.Err.Proc)

	r2 := ErrorResult(ErrDontKnowHow, "butfirst", "")
	r2 = r2.SetErrorProc("bf")
	assert.Equal(t, "butfirst", r2.Err.Proc)
}

func TestFormatNumberFixedPoint(t *testing.T) {
	cases := map[float32]string{
		0:       "0",
		1:       "1",
		-1:      "-1",
		3.5:     "3.5",
		100:     "100",
		0.001:   "0.001",
		123.456: "123.456",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "input %v", in)
	}
}

func TestFormatNumberScientific(t *testing.T) {
	assert.Equal(t, "1e6", FormatNumber(1000000))
	assert.Equal(t, "1n5", FormatNumber(0.00001))
}

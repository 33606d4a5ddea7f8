package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProc(name string, params ...string) *Procedure {
	return &Procedure{Name: name, Params: params}
}

func TestFrameArenaPushPop(t *testing.T) {
	a := NewFrameArena(DefaultMaxFrameDepth, 1024, 1024)
	proc := testProc("f", "n")
	require.True(t, a.Push(proc, []Value{NumberValue(10)}))
	assert.Equal(t, 1, a.Depth())

	_, slot, ok := a.FindBindingInChain("n")
	require.True(t, ok)
	v, _ := a.BindingValue(slot)
	assert.Equal(t, float32(10), v.Number)

	a.Pop()
	assert.Equal(t, 0, a.Depth())
}

func TestFrameArenaTailCallDoesNotGrowArena(t *testing.T) {
	a := NewFrameArena(DefaultMaxFrameDepth, 4096, 4096)
	proc := testProc("f", "n")
	require.True(t, a.Push(proc, []Value{NumberValue(10000)}))

	bindTopAfterPush := a.bindTop
	valueTopAfterPush := a.valueTop

	for i := 0; i < 9999; i++ {
		require.True(t, a.TailCallReuse(proc, []Value{NumberValue(float32(10000 - i - 1))}))
	}

	assert.Equal(t, bindTopAfterPush, a.bindTop)
	assert.Equal(t, valueTopAfterPush, a.valueTop)
	assert.Equal(t, 1, a.Depth())
}

func TestFrameArenaAddLocalExtendsInPlace(t *testing.T) {
	a := NewFrameArena(DefaultMaxFrameDepth, 1024, 1024)
	proc := testProc("f")
	require.True(t, a.Push(proc, nil))
	require.True(t, a.AddLocal("x"))
	_, slot, ok := a.FindBindingInChain("x")
	require.True(t, ok)
	a.SetBindingValue(slot, NumberValue(5))
	v, _ := a.BindingValue(slot)
	assert.Equal(t, float32(5), v.Number)
}

func TestFrameArenaValueStack(t *testing.T) {
	a := NewFrameArena(DefaultMaxFrameDepth, 1024, 1024)
	require.True(t, a.Push(testProc("f"), nil))
	require.True(t, a.PushValue(NumberValue(1)))
	require.True(t, a.PushValue(NumberValue(2)))
	v, ok := a.PopValue()
	require.True(t, ok)
	assert.Equal(t, float32(2), v.Number)
}

func TestFrameArenaTestInheritance(t *testing.T) {
	a := NewFrameArena(DefaultMaxFrameDepth, 1024, 1024)
	require.True(t, a.Push(testProc("outer"), nil))
	a.SetTest(true)
	require.True(t, a.Push(testProc("inner"), nil))

	val, valid := a.GetTest()
	require.True(t, valid)
	assert.True(t, val)
}

func TestFrameArenaScopeLookupChain(t *testing.T) {
	a := NewFrameArena(DefaultMaxFrameDepth, 1024, 1024)
	require.True(t, a.Push(testProc("outer", "x"), []Value{NumberValue(1)}))
	require.True(t, a.Push(testProc("inner"), nil))
	_, slot, ok := a.FindBindingInChain("X")
	require.True(t, ok)
	v, _ := a.BindingValue(slot)
	assert.Equal(t, float32(1), v.Number)
}

func TestFrameArenaDepthLimit(t *testing.T) {
	a := NewFrameArena(2, 1024, 1024)
	require.True(t, a.Push(testProc("a"), nil))
	require.True(t, a.Push(testProc("b"), nil))
	assert.False(t, a.Push(testProc("c"), nil))
}

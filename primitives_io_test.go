package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluatorWithHost(host Host) *Evaluator {
	cfg := NewConfig()
	cfg.SetInt("memory.pool_cells", 2048)
	cfg.SetInt("memory.atom_bytes", 16384)
	mem := NewMemory(cfg.GetInt("memory.pool_cells"), cfg.GetInt("memory.atom_bytes"))
	vars := NewVariables(DefaultMaxGlobalVariables, DefaultMaxLocalVariables, DefaultMaxScopeDepth)
	props := NewProperties()
	procs := NewProcedureTable(64)
	frames := NewFrameArena(DefaultMaxFrameDepth, 256, 256)
	prims := NewCorePrimitiveRegistry()
	return NewEvaluator(mem, vars, props, procs, frames, prims, host, cfg)
}

func TestPrimPrintAddsTrailingNewline(t *testing.T) {
	host := newFakeHost()
	ev := newTestEvaluatorWithHost(host)
	callPrim(ev, "print", NumberValue(5))
	assert.Equal(t, "5\n", host.transcript)
}

func TestPrimTypeOmitsNewline(t *testing.T) {
	host := newFakeHost()
	ev := newTestEvaluatorWithHost(host)
	callPrim(ev, "type", wordVal(ev, "hi"))
	assert.Equal(t, "hi", host.transcript)
}

func TestPrimPrintStripsListBrackets(t *testing.T) {
	host := newFakeHost()
	ev := newTestEvaluatorWithHost(host)
	callPrim(ev, "print", listVal(ev, "a", "b"))
	assert.Equal(t, "a b\n", host.transcript)
}

func TestPrimShowKeepsListBrackets(t *testing.T) {
	host := newFakeHost()
	ev := newTestEvaluatorWithHost(host)
	callPrim(ev, "show", listVal(ev, "a", "b"))
	assert.Equal(t, "[a b]\n", host.transcript)
}

func TestPrimReadwordReturnsLine(t *testing.T) {
	host := newFakeHost("hello world")
	ev := newTestEvaluatorWithHost(host)
	res := callPrim(ev, "readword")
	require.False(t, res.IsErrorLike())
	assert.Equal(t, "hello world", ev.Mem.WordString(res.Value.Node))
}

func TestPrimReadwordOnEOFReturnsEmptyWord(t *testing.T) {
	host := newFakeHost()
	ev := newTestEvaluatorWithHost(host)
	res := callPrim(ev, "readword")
	require.False(t, res.IsErrorLike())
	assert.Equal(t, "", ev.Mem.WordString(res.Value.Node))
}

func TestPrimReadlistSplitsIntoWords(t *testing.T) {
	host := newFakeHost("a b c")
	ev := newTestEvaluatorWithHost(host)
	res := callPrim(ev, "readlist")
	require.False(t, res.IsErrorLike())
	assert.Equal(t, []string{"a", "b", "c"}, listWords(ev, res.Value))
}

func TestPrimReadcharReturnsOneByte(t *testing.T) {
	host := newFakeHost("x")
	ev := newTestEvaluatorWithHost(host)
	res := callPrim(ev, "readchar")
	require.False(t, res.IsErrorLike())
	assert.Equal(t, "x", ev.Mem.WordString(res.Value.Node))
}

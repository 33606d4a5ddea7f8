package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator() *Evaluator {
	cfg := NewConfig()
	cfg.SetInt("memory.pool_cells", 2048)
	cfg.SetInt("memory.atom_bytes", 16384)
	mem := NewMemory(cfg.GetInt("memory.pool_cells"), cfg.GetInt("memory.atom_bytes"))
	vars := NewVariables(DefaultMaxGlobalVariables, DefaultMaxLocalVariables, DefaultMaxScopeDepth)
	props := NewProperties()
	procs := NewProcedureTable(64)
	frames := NewFrameArena(DefaultMaxFrameDepth, 256, 256)
	prims := NewCorePrimitiveRegistry()
	return NewEvaluator(mem, vars, props, procs, frames, prims, newFakeHost(), cfg)
}

func compileAndRun(t *testing.T, ev *Evaluator, src string) (Result, bool) {
	t.Helper()
	ts := NewLexerTokenSource(NewLexer([]byte(src), ModeCode))
	bc, ok := CompileExpr(ev, ts, 0)
	if !ok {
		return Result{}, false
	}
	return NewVM(ev).Run(bc), true
}

func TestCompileArithmeticExpression(t *testing.T) {
	ev := newTestEvaluator()
	res, ok := compileAndRun(t, ev, "3 + 4")
	require.True(t, ok)
	require.False(t, res.IsErrorLike())
	assert.Equal(t, float32(7), res.Value.Number)
}

func TestCompileRespectsPrecedence(t *testing.T) {
	ev := newTestEvaluator()
	res, ok := compileAndRun(t, ev, "2 + 3 * 4")
	require.True(t, ok)
	require.False(t, res.IsErrorLike())
	assert.Equal(t, float32(14), res.Value.Number)
}

func TestCompileUnaryMinus(t *testing.T) {
	ev := newTestEvaluator()
	res, ok := compileAndRun(t, ev, "-5 + 2")
	require.True(t, ok)
	assert.Equal(t, float32(-3), res.Value.Number)
}

func TestCompileComparison(t *testing.T) {
	ev := newTestEvaluator()
	res, ok := compileAndRun(t, ev, "3 < 4")
	require.True(t, ok)
	got, isBool := AsBool(ev.Mem, res.Value)
	require.True(t, isBool)
	assert.True(t, got)
}

func TestCompileColonVariableLoad(t *testing.T) {
	ev := newTestEvaluator()
	ev.Vars.Set("x", NumberValue(9))
	res, ok := compileAndRun(t, ev, ":x + 1")
	require.True(t, ok)
	assert.Equal(t, float32(10), res.Value.Number)
}

func TestCompileFixedArityPrimitiveCall(t *testing.T) {
	ev := newTestEvaluator()
	res, ok := compileAndRun(t, ev, "sum 3 4")
	require.True(t, ok)
	assert.Equal(t, float32(7), res.Value.Number)
}

func TestCompileFallsBackOnUserProcedureCall(t *testing.T) {
	ev := newTestEvaluator()
	_, res := ev.Procs.DefineFromText(ev.Mem, []byte("double :x"), []byte("output :x + :x\n"), 16, ev.Prims.Exists)
	require.False(t, res.IsErrorLike())

	ts := NewLexerTokenSource(NewLexer([]byte("double 5"), ModeCode))
	_, ok := CompileExpr(ev, ts, 0)
	assert.False(t, ok)
}

func TestCompileFallbackRewindsTokenSource(t *testing.T) {
	ev := newTestEvaluator()
	ts := NewLexerTokenSource(NewLexer([]byte("nosuchthing 5"), ModeCode))
	start := ts.GetPosition()
	_, ok := CompileExpr(ev, ts, 0)
	require.False(t, ok)
	assert.Equal(t, start, ts.GetPosition())
}

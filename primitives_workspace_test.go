package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimBuryUnburyOnBareWord(t *testing.T) {
	ev := newTestEvaluator()
	ev.Procs.Define(&Procedure{Name: "fd"})

	callPrim(ev, "bury", wordVal(ev, "fd"))
	p, _ := ev.Procs.Find("fd")
	assert.True(t, p.Buried)

	callPrim(ev, "unbury", wordVal(ev, "fd"))
	assert.False(t, p.Buried)
}

func TestPrimBuryOnListOfNames(t *testing.T) {
	ev := newTestEvaluator()
	ev.Procs.Define(&Procedure{Name: "fd"})
	ev.Procs.Define(&Procedure{Name: "bk"})

	callPrim(ev, "bury", listVal(ev, "fd", "bk"))
	p1, _ := ev.Procs.Find("fd")
	p2, _ := ev.Procs.Find("bk")
	assert.True(t, p1.Buried)
	assert.True(t, p2.Buried)
}

func TestPrimTraceStep(t *testing.T) {
	ev := newTestEvaluator()
	ev.Procs.Define(&Procedure{Name: "fd"})
	callPrim(ev, "trace", wordVal(ev, "fd"))
	p, _ := ev.Procs.Find("fd")
	assert.True(t, p.Traced)

	callPrim(ev, "untrace", wordVal(ev, "fd"))
	assert.False(t, p.Traced)

	callPrim(ev, "step", wordVal(ev, "fd"))
	assert.True(t, p.Stepped)
	callPrim(ev, "unstep", wordVal(ev, "fd"))
	assert.False(t, p.Stepped)
}

func TestPrimErase(t *testing.T) {
	ev := newTestEvaluator()
	ev.Procs.Define(&Procedure{Name: "fd"})
	callPrim(ev, "erase", wordVal(ev, "fd"))
	_, ok := ev.Procs.Find("fd")
	assert.False(t, ok)
}

func TestPrimBuryRejectsNonWordNonList(t *testing.T) {
	ev := newTestEvaluator()
	res := callPrim(ev, "bury", NumberValue(1))
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ErrDoesntLikeInput, res.Err.Kind)
}

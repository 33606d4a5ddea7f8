package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimPpropAndGprop(t *testing.T) {
	ev := newTestEvaluator()
	res := callPrim(ev, "pprop", wordVal(ev, "turtle"), wordVal(ev, "color"), NumberValue(1))
	require.False(t, res.IsErrorLike())

	res = callPrim(ev, "gprop", wordVal(ev, "turtle"), wordVal(ev, "color"))
	require.False(t, res.IsErrorLike())
	assert.Equal(t, float32(1), res.Value.Number)
}

func TestPrimGpropMissingReturnsEmptyWord(t *testing.T) {
	ev := newTestEvaluator()
	res := callPrim(ev, "gprop", wordVal(ev, "turtle"), wordVal(ev, "nope"))
	require.False(t, res.IsErrorLike())
	assert.Equal(t, "", ev.Mem.WordString(res.Value.Node))
}

func TestPrimRemprop(t *testing.T) {
	ev := newTestEvaluator()
	callPrim(ev, "pprop", wordVal(ev, "turtle"), wordVal(ev, "color"), NumberValue(1))
	callPrim(ev, "remprop", wordVal(ev, "turtle"), wordVal(ev, "color"))
	_, ok := ev.Props.Get("turtle", "color")
	assert.False(t, ok)
}

func TestPrimPlist(t *testing.T) {
	ev := newTestEvaluator()
	callPrim(ev, "pprop", wordVal(ev, "turtle"), wordVal(ev, "color"), NumberValue(1))
	res := callPrim(ev, "plist", wordVal(ev, "turtle"))
	assert.Equal(t, []string{"color", "1"}, listWords(ev, res.Value))
}

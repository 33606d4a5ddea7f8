package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesPutGet(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "color", NumberValue(1))
	got, ok := p.Get("turtle", "color")
	require.True(t, ok)
	assert.Equal(t, NumberValue(1), got)
}

func TestPropertiesCaseInsensitive(t *testing.T) {
	p := NewProperties()
	p.Put("Turtle", "Color", NumberValue(1))
	got, ok := p.Get("TURTLE", "COLOR")
	require.True(t, ok)
	assert.Equal(t, NumberValue(1), got)
}

func TestPropertiesPutOverwrites(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "color", NumberValue(1))
	p.Put("turtle", "color", NumberValue(2))
	got, ok := p.Get("turtle", "color")
	require.True(t, ok)
	assert.Equal(t, NumberValue(2), got)
	assert.Len(t, p.GetList("turtle"), 1)
}

func TestPropertiesRemove(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "color", NumberValue(1))
	p.Remove("turtle", "color")
	_, ok := p.Get("turtle", "color")
	assert.False(t, ok)
}

func TestPropertiesGetListOrder(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "a", NumberValue(1))
	p.Put("turtle", "b", NumberValue(2))
	list := p.GetList("turtle")
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].prop)
	assert.Equal(t, "b", list[1].prop)
}

func TestPropertiesEraseAll(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "a", NumberValue(1))
	p.EraseAll("turtle")
	assert.Equal(t, 0, p.Count())
	_, ok := p.Get("turtle", "a")
	assert.False(t, ok)
}

func TestPropertiesCountAndAt(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "a", NumberValue(1))
	p.Put("house", "b", NumberValue(2))
	require.Equal(t, 2, p.Count())
	name, entries, ok := p.At(0)
	require.True(t, ok)
	assert.Equal(t, "turtle", name)
	assert.Len(t, entries, 1)

	_, _, ok = p.At(5)
	assert.False(t, ok)
}

func TestPropertiesGCRootValues(t *testing.T) {
	p := NewProperties()
	p.Put("turtle", "a", NumberValue(1))
	p.Put("turtle", "b", NumberValue(2))
	vals := p.GCRootValues()
	assert.Len(t, vals, 2)
}

package hstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerBasics(t *testing.T) {
	h := New()
	h.Set("a", "1")
	h.SetNull("b")

	assert.Equal(t, 2, h.Len())
	assert.True(t, h.Has("a"))
	assert.True(t, h.Has("b"))
	assert.False(t, h.Has("c"))

	v, ok := h.GetString("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	// present key with NULL value: Get sees it, GetString does not
	_, ok = h.GetString("b")
	assert.False(t, ok)
	tv, ok := h.Get("b")
	require.True(t, ok)
	assert.False(t, tv.Valid)

	h.Delete("a")
	assert.False(t, h.Has("a"))
	assert.Equal(t, 1, h.Len())
}

func TestKeysSorted(t *testing.T) {
	h := FromMap(map[string]string{"c": "3", "a": "1", "b": "2"})
	assert.Equal(t, []string{"a", "b", "c"}, h.Keys())
}

func TestCloneIsIndependent(t *testing.T) {
	h := FromMap(map[string]string{"a": "1"})
	c := h.Clone()
	c.Set("a", "changed")
	c.Set("b", "new")

	v, _ := h.GetString("a")
	assert.Equal(t, "1", v)
	assert.False(t, h.Has("b"))

	assert.Nil(t, Hstore(nil).Clone())
}

func TestEqual(t *testing.T) {
	a := FromMap(map[string]string{"x": "1", "y": "2"})
	b := FromMap(map[string]string{"y": "2", "x": "1"})
	assert.True(t, a.Equal(b))

	b.Set("x", "other")
	assert.False(t, a.Equal(b))

	// NULL and empty string are different values
	p := New()
	p.Set("k", "")
	q := New()
	q.SetNull("k")
	assert.False(t, p.Equal(q))
}

func TestNewWithCapacity(t *testing.T) {
	h := NewWithCapacity(8)
	assert.Equal(t, 0, h.Len())
	h.Set("a", "1")
	assert.Equal(t, 1, h.Len())
}

func TestColumnSQL(t *testing.T) {
	assert.Equal(t, `"settings" hstore NOT NULL`, ColumnSQL("settings", true))
	assert.Equal(t, `"settings" hstore`, ColumnSQL("settings", false))
}

func TestFuncLogger(t *testing.T) {
	var gotLevel, gotMsg string
	l := FuncLogger{Fn: func(level, msg string, ctx map[string]any) {
		gotLevel, gotMsg = level, msg
	}}
	l.Info("registered", nil)
	assert.Equal(t, "info", gotLevel)
	assert.Equal(t, "registered", gotMsg)
}

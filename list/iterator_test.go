package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	list := From(1, 2, 3)
	it := list.Iterator()
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, it.Next())
	assert.Equal(t, 0, it.Value())

	it.Reset()
	assert.Equal(t, -1, it.Index())
	assert.True(t, it.Next())
	assert.Equal(t, 1, it.Value())

	it.Close()
	assert.False(t, it.Next())
	assert.Equal(t, 0, it.Value())
}

func TestIteratorEmpty(t *testing.T) {
	it := New[string]().Iterator()
	assert.False(t, it.Next())
	assert.Equal(t, "", it.Value())
}

func TestIteratorSeesAppends(t *testing.T) {
	list := From("a")
	it := list.Iterator()
	assert.True(t, it.Next())
	assert.Equal(t, "a", it.Value())
	assert.False(t, it.Next())

	// positional: a value appended after exhaustion is still reached
	list.Add("b")
	assert.True(t, it.Next())
	assert.Equal(t, "b", it.Value())
}

func TestIteratorAfterClear(t *testing.T) {
	list := From(1, 2, 3)
	it := list.Iterator()
	assert.True(t, it.Next())
	list.Clear()
	assert.Equal(t, 0, it.Value())
	assert.False(t, it.Next())
}

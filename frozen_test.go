package toparena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrozenAccessors(t *testing.T) {
	a := New[int]()
	f, err := a.Copy([]int{5, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 6, f.At(1))
	assert.Equal(t, []int{5, 6, 7}, f.Slice())
	assert.True(t, Equal(f, []int{5, 6, 7}))
	assert.False(t, Equal(f, []int{5, 6}))
	assert.Panics(t, func() { f.At(3) })

	var seen []int
	for i, v := range f.All() {
		assert.Equal(t, f.At(i), v)
		seen = append(seen, v)
	}
	assert.Equal(t, []int{5, 6, 7}, seen)
}

func TestFrozenClone(t *testing.T) {
	a := New[int]()
	f, err := a.Copy([]int{1, 2})
	require.NoError(t, err)

	c := f.Clone()
	c[0] = 100
	assert.Equal(t, []int{1, 2}, f.Slice())
}

func TestFrozenAppendDoesNotWriteArena(t *testing.T) {
	a := New[byte](WithChunkSize(64))
	f, err := a.Copy([]byte{1, 2})
	require.NoError(t, err)

	top, err := a.Top()
	require.NoError(t, err)
	top.Extend(3, 4)

	s := f.Slice()
	assert.Equal(t, len(s), cap(s))
	_ = append(s, 99)
	assert.Equal(t, []byte{3, 4}, top.Slice(), "append on a frozen view reached the top")
	top.Discard()
}

func TestFrozenZeroValue(t *testing.T) {
	var f Frozen[byte]
	assert.Zero(t, f.Len())
	assert.Empty(t, f.Clone())
	assert.True(t, Equal(f, nil))
}

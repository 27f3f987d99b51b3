package seq_test

import (
	"fmt"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/sequence/seq"
)

func TestToList(t *testing.T) {
	sq := numbers()
	first, second := sq.ToList(), sq.ToList()
	require.Equal(t, first, second)

	first[0] = 100
	require.Equal(t, 1, second[0], "lists are independent from each other")
	require.Equal(t, 1, sq.FirstOrDefault(), "lists are independent from the sequence")
}

func TestToArray(t *testing.T) {
	expected := numbers().Count()
	items := numbers().ToArray()

	require.Len(t, items, expected)
	require.Equal(t, len(items), cap(items))
	require.Equal(t, 1, items[0])
	require.Equal(t, 10, items[9])

	empty := seq.Empty[string]().ToArray()
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestToSet(t *testing.T) {
	name := randomdata.SillyName()
	other := name + "-" + randomdata.Noun()
	set := seq.ToSet(seq.From(name, other, name, other, name))

	require.Equal(t, 2, set.Len())
	require.True(t, set.Contains(name))
	require.True(t, set.Contains(other))
	require.False(t, set.Contains(""))
	require.ElementsMatch(t, []string{name, other}, set.Values().ToList())
}

func TestToSetPanicsOnUnhashableElements(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.Contains(t, fmt.Sprint(r), "unhashable type []int")
	}()
	seq.ToSet(seq.From[any](1, []int{2}))
}

func TestToSetOfRandomNumbers(t *testing.T) {
	values := make([]int, 0, 64)
	for range 64 {
		values = append(values, randomdata.Number(0, 8))
	}
	set := seq.ToSet(seq.FromSlice(values))

	require.LessOrEqual(t, set.Len(), 8)
	for _, v := range values {
		require.True(t, set.Contains(v))
	}
}

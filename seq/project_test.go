package seq_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/sequence/seq"
)

func TestMapToStrings(t *testing.T) {
	items := seq.Map(numbers(), strconv.Itoa)
	require.Equal(t, 10, items.Count())

	first, err := items.First()
	require.NoError(t, err)
	require.Equal(t, "1", first)

	last, err := items.Last()
	require.NoError(t, err)
	require.Equal(t, "10", last)

	require.Equal(t, items.ToList(), seq.Select(numbers(), strconv.Itoa).ToList())
	require.Equal(t, 0, seq.Map(seq.Empty[int](), strconv.Itoa).Count())
}

type label string

func (l label) String() string { return string(l) }

func TestOfType(t *testing.T) {
	mixed := seq.From[any](1, "string", 1.0, struct{}{})

	require.Equal(t, 1, seq.OfType[int](mixed).Count())
	require.Equal(t, 1, seq.OfType[string](mixed).Count())
	require.Equal(t, 1, seq.OfType[float64](mixed).Count())
	require.Equal(t, 0, seq.OfType[byte](mixed).Count())
	require.Equal(t, []string{"string"}, seq.OfType[string](mixed).ToList())

	stringers := seq.OfType[fmt.Stringer](seq.From[any](label("a"), 2, label("b")))
	require.Equal(t, 2, stringers.Count(), "interface targets keep implementers")
}

func TestOfTypeFunc(t *testing.T) {
	evens := seq.OfTypeFunc(numbers(), func(n int) (string, bool) {
		return strconv.Itoa(n), n%2 == 0
	})
	require.Equal(t, []string{"2", "4", "6", "8", "10"}, evens.ToList())
}

func TestRange(t *testing.T) {
	items := seq.Range(1, 1000)
	require.Equal(t, 1000, items.Count())
	require.Equal(t, 1, items.FirstOrDefault())
	require.Equal(t, 1000, items.LastOrDefault())

	require.Equal(t, []int{5, 6, 7}, seq.Range(5, 7).ToList(), "the second argument is the last value")
	require.Equal(t, []int{3}, seq.Range(3, 3).ToList())
	require.Equal(t, 0, seq.Range(7, 5).Count())
	require.Equal(t, []int{-2, -1, 0}, seq.Range(-2, 0).ToList())
}

func TestRangeBounds(t *testing.T) {
	tail := seq.Range[uint8](math.MaxUint8-2, math.MaxUint8)
	require.Equal(t, []uint8{253, 254, 255}, tail.ToList())

	full := seq.Range[int8](math.MinInt8, math.MaxInt8)
	require.Equal(t, 256, full.Count())
	require.Equal(t, int8(math.MinInt8), full.FirstOrDefault())
	require.Equal(t, int8(math.MaxInt8), full.LastOrDefault())
}

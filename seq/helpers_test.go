package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/sequence/seq"
)

func requireArgumentPanic(tb testing.TB, name string, fn func()) {
	tb.Helper()
	defer func() {
		err, ok := recover().(error)
		require.True(tb, ok, "expected a panic carrying an error")
		require.ErrorIs(tb, err, seq.ErrInvalidArgument)

		var argErr *seq.ArgumentError
		require.ErrorAs(tb, err, &argErr)
		require.Equal(tb, name, argErr.Name)
	}()
	fn()
}

func numbers() seq.Sequence[int] {
	return seq.From(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
}

func biggerThanFive(n int) bool { return n > 5 }

package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/sequence/option"
)

func TestSomeNilBehavior(t *testing.T) {
	var value *int
	opt := option.Some(value)
	require.True(t, opt.IsSome(), "Some(nil) is still present")

	got, ok := opt.Get()
	require.True(t, ok)
	require.Nil(t, got)
}

func TestZeroValueIsNone(t *testing.T) {
	var zero option.Option[int]
	require.True(t, zero.IsNone())
	require.Equal(t, 7, zero.GetOrElse(7))
	require.Equal(t, "None", zero.String())
}

func TestUnwrap(t *testing.T) {
	value, err := option.Some(42).Unwrap(errors.New("missing"))
	require.NoError(t, err)
	require.Equal(t, 42, value)

	missing := errors.New("missing")
	_, err = option.None[int]().Unwrap(missing)
	require.ErrorIs(t, err, missing)

	_, err = option.None[int]().Unwrap(nil)
	require.ErrorIs(t, err, option.ErrNone)
}

func TestFilterAndMap(t *testing.T) {
	opt := option.Some(10)
	require.True(t, opt.Filter(func(v int) bool { return v > 10 }).IsNone())
	require.True(t, opt.Filter(func(v int) bool { return v == 10 }).IsSome())

	mapped := option.Map(opt, func(v int) string { return "n=" + strconv.Itoa(v) })
	require.Equal(t, "Some(n=10)", mapped.String())
	require.True(t, option.Map(option.None[int](), func(int) string { return "" }).IsNone())
}

func TestFromOk(t *testing.T) {
	lookup := map[string]int{"a": 1}
	value, ok := lookup["a"]
	require.True(t, option.FromOk(value, ok).IsSome())

	value, ok = lookup["b"]
	require.Equal(t, -1, option.FromOk(value, ok).GetOrElseFunc(func() int { return -1 }))
}

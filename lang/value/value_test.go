package value_test

import (
	"testing"

	"github.com/mna/loxvm/lang/value"
	"github.com/stretchr/testify/require"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    value.Value
		want bool
	}{
		{value.None, false},
		{value.Bool(false), false},
		{value.Bool(true), true},
		{value.Number(0), true},
		{value.String(""), true},
	}
	for _, c := range cases {
		require.Equal(t, c.want, value.IsTruthy(c.v), "%#v", c.v)
	}
}

func TestEqual(t *testing.T) {
	fn1 := &value.Function{Name: "f"}
	fn2 := &value.Function{Name: "f"}

	cases := []struct {
		a, b value.Value
		want bool
	}{
		{value.None, value.None, true},
		{value.None, value.Bool(false), false},
		{value.Bool(true), value.Bool(true), true},
		{value.Bool(true), value.Bool(false), false},
		{value.Number(1), value.Number(1), true},
		{value.Number(1), value.Number(2), false},
		{value.Number(1), value.String("1"), false},
		{value.String("a"), value.String("a"), true},
		{value.String("a"), value.String("b"), false},
		{fn1, fn1, true},
		{fn1, fn2, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, value.Equal(c.a, c.b), "%v == %v", c.a, c.b)
	}
}

func TestNumberString(t *testing.T) {
	require.Equal(t, "3.14", value.Number(3.14).String())
	require.Equal(t, "3", value.Number(3).String())
	require.Equal(t, "-0.5", value.Number(-0.5).String())
}

func TestBoolString(t *testing.T) {
	require.Equal(t, "true", value.Bool(true).String())
	require.Equal(t, "false", value.Bool(false).String())
}

func TestCallableName(t *testing.T) {
	require.Equal(t, "script", value.CallableName(&value.Function{}))
	require.Equal(t, "f", value.CallableName(&value.Function{Name: "f"}))
	require.Equal(t, "clock", value.CallableName(&value.Native{Name: "clock"}))
}

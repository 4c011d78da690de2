package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatJS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{100, "100"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatJS(tc.in), "FormatJS(%v)", tc.in)
	}
}

func TestDecimalPlaces(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"":       0,
		"10":     0,
		"1.25":   2,
		"5.0":    1,
		"1e-7":   7,
		"1.5e-7": 8,
		"1.5e3":  0,
		"-0.001": 3,
	}

	for in, want := range cases {
		require.Equal(t, want, decimalPlaces(in), "decimalPlaces(%q)", in)
	}
}

func TestParseFloatPrefix(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12.0, parseFloatPrefix("12abc"))
	require.Equal(t, 1.0, parseFloatPrefix("1."))
	require.Equal(t, 0.5, parseFloatPrefix(".5"))
	require.Equal(t, -0.5, parseFloatPrefix("-0.5x"))
	require.Equal(t, 100.0, parseFloatPrefix("100"))
	require.True(t, math.IsNaN(parseFloatPrefix("-")))
	require.True(t, math.IsNaN(parseFloatPrefix(".")))
	require.True(t, math.IsNaN(parseFloatPrefix("")))
}

func TestIsNumberString(t *testing.T) {
	t.Parallel()

	require.True(t, isNumberString("5.0"))
	require.True(t, isNumberString("-3"))
	require.True(t, isNumberString("1."))
	require.False(t, isNumberString(""))
	require.False(t, isNumberString("-"))
	require.False(t, isNumberString("1.2.3"))
}

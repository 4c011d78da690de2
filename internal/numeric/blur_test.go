package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeOnBlurClamps(t *testing.T) {
	t.Parallel()

	cfg := bounded(Float(0), Float(100))

	next, changed := NormalizeOnBlur(Float(150), cfg, ModeNumber)
	require.True(t, changed)
	requireValue(t, Float(100), next)

	next, changed = NormalizeOnBlur(Float(50), cfg, ModeNumber)
	require.False(t, changed)
	requireValue(t, Float(50), next)

	cfg.ClampBehavior = ClampNone
	next, changed = NormalizeOnBlur(Float(150), cfg, ModeNumber)
	require.False(t, changed)
	requireValue(t, Float(150), next)

	bigCfg := bounded(Int64(-5), Int64(5))
	next, changed = NormalizeOnBlur(Int64(-9), bigCfg, ModeBigInt)
	require.True(t, changed)
	requireValue(t, Int64(-5), next)
}

func TestNormalizeOnBlurTrimsText(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	cases := []struct {
		name    string
		in      Value
		want    Value
		changed bool
	}{
		{name: "leading zeros", in: Text("00100"), want: Float(100), changed: true},
		{name: "trailing fractional zero", in: Text("5.0"), want: Float(5), changed: true},
		{name: "trailing separator", in: Text("10."), want: Float(10), changed: true},
		{name: "negative zero", in: Text("-0"), want: Float(0), changed: true},
		{name: "lone minus stays", in: Text("-"), want: Text("-"), changed: false},
		{name: "empty stays", in: Empty(), want: Empty(), changed: false},
		{name: "too precise is skipped", in: Text("0.100000000000000"), want: Text("0.100000000000000"), changed: false},
		{name: "unsafe integer stays text", in: Text("0012345678901234567"), want: Text("12345678901234567"), changed: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, changed := NormalizeOnBlur(tc.in, cfg, ModeNumber)
			require.Equal(t, tc.changed, changed)
			requireValue(t, tc.want, next)
		})
	}
}

func TestNormalizeOnBlurTrimClampsParsedText(t *testing.T) {
	t.Parallel()

	cfg := bounded(Float(0), Float(10))
	cfg.ClampBehavior = ClampNone

	next, changed := NormalizeOnBlur(Text("0050.0"), cfg, ModeNumber)
	require.True(t, changed)
	requireValue(t, Float(10), next)
}

func TestNormalizeOnBlurWithoutTrim(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TrimLeadingZeroesOnBlur = false

	next, changed := NormalizeOnBlur(Text("00100"), cfg, ModeNumber)
	require.False(t, changed)
	requireValue(t, Text("00100"), next)
}

func TestNormalizeOnBlurBigInteger(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	next, changed := NormalizeOnBlur(Text("007"), cfg, ModeBigInt)
	require.True(t, changed)
	requireValue(t, Int64(7), next)

	next, changed = NormalizeOnBlur(Text("-"), cfg, ModeBigInt)
	require.False(t, changed)
	requireValue(t, Text("-"), next)

	noNegative := DefaultConfig()
	noNegative.AllowNegative = false
	next, _ = NormalizeOnBlur(Text("-007"), noNegative, ModeBigInt)
	requireValue(t, Text("-7"), next)
}

func TestStripLeadingZeros(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"00100": "100",
		"-007":  "-7",
		"00.5":  "0.5",
		"000":   "0",
		"0":     "0",
		"-":     "-",
		"":      "",
		"12":    "12",
		"-0.0":  "-0.0",
	}
	for in, want := range cases {
		require.Equal(t, want, StripLeadingZeros(in), "StripLeadingZeros(%q)", in)
	}
}

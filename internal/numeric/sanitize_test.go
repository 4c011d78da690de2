package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func typed(text string, cfg Config, mode Mode) Value {
	return Sanitize(ParseInput(text, cfg, mode), cfg, mode)
}

func TestSanitizeFixedPrecision(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	strictZeros := DefaultConfig()
	strictZeros.AllowLeadingZeros = false

	cases := []struct {
		name string
		text string
		cfg  Config
		want Value
	}{
		{name: "plain integer resolves", text: "150", cfg: cfg, want: Float(150)},
		{name: "decimal resolves", text: "10.5", cfg: cfg, want: Float(10.5)},
		{name: "zero resolves", text: "0", cfg: cfg, want: Float(0)},
		{name: "empty text is empty", text: "", cfg: cfg, want: Empty()},
		{name: "lone minus is kept", text: "-", cfg: cfg, want: Text("-")},
		{name: "trailing separator is kept", text: "10.", cfg: cfg, want: Text("10.")},
		{name: "trailing fractional zero is kept", text: "5.0", cfg: cfg, want: Text("5.0")},
		{name: "trailing zero after digits is kept", text: "13.10", cfg: cfg, want: Text("13.10")},
		{name: "leading decimal zero is kept", text: "0.", cfg: cfg, want: Text("0.")},
		{name: "negative zero is kept", text: "-0", cfg: cfg, want: Text("-0")},
		{name: "negative zero fraction is kept", text: "-0.00", cfg: cfg, want: Text("-0.00")},
		{name: "fourteen digits are kept", text: "12345678901234", cfg: cfg, want: Text("12345678901234")},
		{name: "thirteen digits resolve", text: "1234567890123", cfg: cfg, want: Float(1234567890123)},
		{name: "leading zeros resolve when allowed", text: "007", cfg: cfg, want: Float(7)},
		{name: "leading zeros are kept when disallowed", text: "007", cfg: strictZeros, want: Text("007")},
		{name: "leading zero fraction resolves when disallowed", text: "0.5", cfg: strictZeros, want: Float(0.5)},
		{name: "noise is dropped", text: "1a2", cfg: cfg, want: Float(12)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := typed(tc.text, tc.cfg, ModeNumber)
			require.True(t, tc.want.Equal(got), "want %#v, got %#v", tc.want, got)
		})
	}
}

func TestSanitizeBigInteger(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	huge, _ := new(big.Int).SetString("12345678901234567890", 10)

	require.True(t, BigInt(huge).Equal(typed("12345678901234567890", cfg, ModeBigInt)))
	require.True(t, Text("-").Equal(typed("-", cfg, ModeBigInt)))
	require.True(t, Empty().Equal(typed("", cfg, ModeBigInt)))
	require.True(t, Int64(-42).Equal(typed("-42", cfg, ModeBigInt)))
	require.True(t, Int64(0).Equal(typed("0", cfg, ModeBigInt)))
	require.True(t, Int64(7).Equal(typed("007", cfg, ModeBigInt)))

	noZeros := DefaultConfig()
	noZeros.AllowLeadingZeros = false
	require.True(t, Text("007").Equal(typed("007", noZeros, ModeBigInt)))
	require.True(t, Text("-01").Equal(typed("-01", noZeros, ModeBigInt)))

	noNegative := DefaultConfig()
	noNegative.AllowNegative = false
	require.True(t, Text("-5").Equal(Sanitize(FormatValues{Value: "-5"}, noNegative, ModeBigInt)))

	// Decimal separators never survive parsing in big-integer mode.
	require.True(t, Int64(15).Equal(typed("1.5", cfg, ModeBigInt)))
}

func TestSanitizeNeverStoresFloatInBigIntMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	for _, text := range []string{"", "-", "1", "1.", "1.5", "-0", "0.0", "99999999999999999999", "abc"} {
		got := typed(text, cfg, ModeBigInt)
		require.NotEqual(t, KindFloat, got.Kind(), "text %q", text)
	}
}

func TestParseInputFormatting(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Prefix = "$"
	cfg.ThousandSeparator = ","

	values := ParseInput("$1,234.5", cfg, ModeNumber)
	require.Equal(t, "1234.5", values.Value)
	require.Equal(t, "$1,234.5", values.FormattedValue)
	f, ok := values.Float()
	require.True(t, ok)
	require.Equal(t, 1234.5, f)

	scaled := DefaultConfig()
	scaled.DecimalScale = 2
	require.Equal(t, "1.23", ParseInput("1.2345", scaled, ModeNumber).Value)

	noNegative := DefaultConfig()
	noNegative.AllowNegative = false
	require.Equal(t, "5", ParseInput("-5", noNegative, ModeNumber).Value)

	noDecimal := DefaultConfig()
	noDecimal.AllowDecimal = false
	require.Equal(t, "1", ParseInput("1.5", noDecimal, ModeNumber).Value)
	require.Equal(t, "12", ParseInput("12.", noDecimal, ModeNumber).Value)

	zeroScale := DefaultConfig()
	zeroScale.DecimalScale = 0
	require.Equal(t, "9", ParseInput("9.99", zeroScale, ModeNumber).Value)
	require.Equal(t, "9.9", ParseInput("9.99", withScale(1), ModeNumber).Value)

	require.Equal(t, "123", ParseInput("123.45", DefaultConfig(), ModeBigInt).Value)
	require.Equal(t, "-7", ParseInput("-7.5", DefaultConfig(), ModeBigInt).Value)

	comma := DefaultConfig()
	comma.DecimalSeparator = ","
	comma.ThousandSeparator = "."
	require.Equal(t, "1234.5", ParseInput("1.234,5", comma, ModeNumber).Value)

	require.Equal(t, "5", ParseInput("--5", DefaultConfig(), ModeNumber).Value)
	require.Nil(t, ParseInput("-", DefaultConfig(), ModeNumber).FloatValue)
}

func TestDisplayText(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Prefix = "$"
	cfg.ThousandSeparator = ","
	cfg.DecimalScale = 2
	cfg.FixedDecimalScale = true

	require.Equal(t, "$1,234.50", DisplayText(Float(1234.5), cfg))
	require.Equal(t, "$1,234,567", DisplayText(Int64(1234567), cfg))
	require.Equal(t, "$5.0", DisplayText(Text("5.0"), cfg))
	require.Equal(t, "", DisplayText(Empty(), cfg))
	require.Equal(t, "-", DisplayText(Text("-"), DefaultConfig()))
}

func TestValuesOf(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Suffix = " kg"

	values := ValuesOf(Float(2.5), cfg)
	require.Equal(t, "2.5", values.Value)
	require.Equal(t, "2.5 kg", values.FormattedValue)
	require.Equal(t, 2.5, *values.FloatValue)

	values = ValuesOf(Text("5."), cfg)
	require.Equal(t, "5.", values.Value)
	require.Equal(t, 5.0, *values.FloatValue)

	values = ValuesOf(Int64(12), cfg)
	require.Equal(t, "12 kg", values.FormattedValue)
	require.Nil(t, values.FloatValue)

	require.Nil(t, ValuesOf(Empty(), cfg).FloatValue)
}

func withScale(scale int) Config {
	cfg := DefaultConfig()
	cfg.DecimalScale = scale
	return cfg
}

func TestSanitizeDropsPastedFraction(t *testing.T) {
	t.Parallel()

	noDecimal := DefaultConfig()
	noDecimal.AllowDecimal = false
	values := ParseInput("1.5", noDecimal, ModeNumber)
	require.True(t, Sanitize(values, noDecimal, ModeNumber).Equal(Float(1)))

	bigValues := ParseInput("123.45", DefaultConfig(), ModeBigInt)
	require.True(t, Sanitize(bigValues, DefaultConfig(), ModeBigInt).Equal(Int64(123)))
}

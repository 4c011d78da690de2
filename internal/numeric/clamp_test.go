package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampFloat(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5.0, ClampFloat(5, Float(0), Float(10)))
	require.Equal(t, 0.0, ClampFloat(-3, Float(0), Float(10)))
	require.Equal(t, 10.0, ClampFloat(30, Float(0), Float(10)))
	require.Equal(t, 30.0, ClampFloat(30, Empty(), Empty()))
	// An inverted range resolves to max.
	require.Equal(t, 2.0, ClampFloat(7, Float(5), Float(2)))
}

func TestClampIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := bounded(Float(-2.5), Float(7.25))
	for _, f := range []float64{-100, -2.5, 0, 3.3, 7.25, 1e9} {
		once := Clamp(Float(f), cfg)
		require.True(t, once.Equal(Clamp(once, cfg)), "clamp(%v)", f)
		require.True(t, InRange(once, cfg))
	}

	bigCfg := bounded(Int64(-10), Int64(10))
	huge, _ := new(big.Int).SetString("1000000000000000000000", 10)
	once := Clamp(BigInt(huge), bigCfg)
	requireValue(t, Int64(10), once)
	requireValue(t, once, Clamp(once, bigCfg))
}

func TestClampLeavesTextAlone(t *testing.T) {
	t.Parallel()

	cfg := bounded(Float(0), Float(1))
	requireValue(t, Text("5."), Clamp(Text("5."), cfg))
	requireValue(t, Empty(), Clamp(Empty(), cfg))
}

func TestBoundaryChecks(t *testing.T) {
	t.Parallel()

	cfg := bounded(Float(0), Float(10))
	require.True(t, AtOrAboveMax(Float(10), cfg))
	require.False(t, AtOrAboveMax(Float(9.99), cfg))
	require.True(t, AtOrBelowMin(Float(0), cfg))
	require.False(t, AtOrBelowMin(Text("0"), cfg))
	require.False(t, AtOrAboveMax(Float(1e9), DefaultConfig()))

	bigCfg := bounded(Int64(0), Int64(10))
	require.True(t, AtOrAboveMax(Int64(11), bigCfg))
	require.True(t, AtOrBelowMin(Int64(0), bigCfg))
}

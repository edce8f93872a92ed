package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	t.Run("FromDegrees", func(t *testing.T) {
		require.InDelta(t, math.Pi/2, FromDegrees(90).Radians(), 1e-12)
		require.InDelta(t, math.Pi, FromDegrees(180).Radians(), 1e-12)
	})

	t.Run("Degrees Round Trip", func(t *testing.T) {
		for _, deg := range []float64{0, 1, 45, 90, -30, 359.5, 720, 1e-6} {
			require.InDelta(t, deg, FromDegrees(deg).Degrees(), 1e-9, "deg=%v", deg)
		}
	})

	t.Run("Zero Value", func(t *testing.T) {
		var a Angle
		require.Equal(t, FromRadians(0), a)
		require.Equal(t, 0.0, a.Radians())
	})

	t.Run("Arithmetic", func(t *testing.T) {
		a := FromRadians(1.5).Add(FromRadians(0.5))
		require.Equal(t, 2.0, a.Radians())
		require.Equal(t, 1.0, a.Sub(FromRadians(1)).Radians())
	})

	t.Run("Compare", func(t *testing.T) {
		assert.Equal(t, -1, FromRadians(1).Compare(FromRadians(2)))
		assert.Equal(t, 0, FromRadians(2).Compare(FromRadians(2)))
		assert.Equal(t, 1, FromRadians(3).Compare(FromRadians(2)))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "90.0°", FromDegrees(90).String())
	})
}

func TestColorDefaults(t *testing.T) {
	require.Equal(t, ColorF{R: 0.1, G: 0.2, B: 0.3, A: 1}, NewColorF(0.1, 0.2, 0.3))
	require.Equal(t, ColorByte{R: 1, G: 2, B: 3, A: 255}, NewColorByte(1, 2, 3))
	require.Equal(t, ColorByte{R: 1, G: 2, B: 3, A: 4}, NewColorByteA(1, 2, 3, 4))
}

func TestIdentical(t *testing.T) {
	nan := math.NaN()

	v := Vec2{X: nan, Y: 1}
	require.NotEqual(t, v, v, "NaN breaks == equality")
	require.True(t, v.Identical(v))
	require.False(t, v.Identical(Vec2{X: 0, Y: 1}))

	require.True(t, Vec3{1, nan, 3}.Identical(Vec3{1, nan, 3}))
	require.False(t, Vec3{0, 0, 0}.Identical(Vec3{0, 0, math.Copysign(0, -1)}))
	require.True(t, FromRadians(nan).Identical(FromRadians(nan)))
	require.True(t, NewColorFA(nan, 0, 0, 1).Identical(NewColorFA(nan, 0, 0, 1)))
}

func TestVec3_MoveTowards(t *testing.T) {
	t.Run("Non Positive Delta Returns Current", func(t *testing.T) {
		cur := Vec3{1, 1, 1}
		require.Equal(t, cur, cur.MoveTowards(Vec3{5, 5, 5}, 0))
		require.Equal(t, cur, cur.MoveTowards(Vec3{5, 5, 5}, -1))
	})

	t.Run("Same Position Returns Target", func(t *testing.T) {
		p := Vec3{3, 3, 3}
		require.Equal(t, p, p.MoveTowards(p, 1))
	})

	t.Run("Large Delta Lands Exactly", func(t *testing.T) {
		require.Equal(t, Vec3{1, 0, 0}, Vec3{}.MoveTowards(Vec3{1, 0, 0}, 100))
		require.Equal(t, Vec3{0, 3, 4}, Vec3{}.MoveTowards(Vec3{0, 3, 4}, 5))
	})

	t.Run("Partial Step", func(t *testing.T) {
		got := Vec3{}.MoveTowards(Vec3{0, 3, 4}, 2.5)
		require.InDelta(t, 0, got.X, 1e-12)
		require.InDelta(t, 1.5, got.Y, 1e-12)
		require.InDelta(t, 2, got.Z, 1e-12)
		require.InDelta(t, 2.5, got.Len(), 1e-12)
	})
}

func TestVec2_MoveTowards(t *testing.T) {
	require.Equal(t, Vec2{2, 2}, Vec2{2, 2}.MoveTowards(Vec2{9, 9}, 0))
	require.Equal(t, Vec2{3, 4}, Vec2{}.MoveTowards(Vec2{3, 4}, 5))

	got := Vec2{}.MoveTowards(Vec2{3, 4}, 1)
	require.InDelta(t, 0.6, got.X, 1e-12)
	require.InDelta(t, 0.8, got.Y, 1e-12)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2)", Vec2{1, 2}.String())
	assert.Equal(t, "(1, 2, 3)", Vec3{1, 2, 3}.String())
	assert.Equal(t, "(0.5, 1, 0, 1)", NewColorF(0.5, 1, 0).String())
	assert.Equal(t, "(NaN, +Inf)", Vec2{math.NaN(), math.Inf(1)}.String())
}

package field_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sp301415/ringo-kyber/field"
	"github.com/sp301415/ringo-kyber/num"
	"github.com/stretchr/testify/assert"
)

// mod returns the residue of x modulo Q in [0, Q).
func mod(x int64) int64 {
	return num.Mod(x, field.Q)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, int64(field.BarrettMultiplier), int64((2*field.BarrettR+field.Q)/(2*field.Q)))
	assert.Equal(t, int64(1), num.Mod[int64](field.Q*field.InverseOfModulusModR, field.MontgomeryR))
	assert.Equal(t, int64(field.MontgomeryRSquared), mod(field.MontgomeryR%field.Q*(field.MontgomeryR%field.Q)))
	assert.Equal(t, 104862, field.BarrettInputBound)
}

func TestBarrettReduce(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		assert.Equal(t, field.Element(0), field.BarrettReduce(3329))
		assert.Equal(t, field.Element(1), field.BarrettReduce(3330))
		assert.Equal(t, field.Element(0), field.BarrettReduce(0))
		assert.Equal(t, field.Element(-1), field.BarrettReduce(3328))
	})

	t.Run("Exhaustive", func(t *testing.T) {
		for x := field.Element(-field.BarrettInputBound); x <= field.BarrettInputBound; x++ {
			y := field.BarrettReduce(x)
			if mod(int64(y)) != mod(int64(x)) {
				t.Fatalf("BarrettReduce(%d) = %d is not congruent", x, y)
			}
			if y > (field.Q+1)/2 || y < -(field.Q+1)/2 {
				t.Fatalf("BarrettReduce(%d) = %d out of range", x, y)
			}
		}
	})
}

func TestMontgomeryReduce(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		one := field.ToMontgomery(1)
		assert.Equal(t, int64(field.MontgomeryR%field.Q), mod(int64(one)))
		assert.Equal(t, int64(1), mod(int64(field.MontgomeryReduce(one))))
	})

	t.Run("Bounds", func(t *testing.T) {
		for _, x := range []field.Element{
			-field.MontgomeryInputBound, -field.MontgomeryInputBound + 1,
			-1, 0, 1,
			field.MontgomeryInputBound - 1, field.MontgomeryInputBound,
		} {
			y := field.MontgomeryReduce(x)
			assert.Equal(t, mod(int64(x)), mod(int64(y)*field.MontgomeryR), "x = %d", x)
			assert.Greater(t, 2*int64(y), int64(-3*field.Q), "x = %d", x)
			assert.LessOrEqual(t, 2*int64(y), int64(field.Q), "x = %d", x)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for a := field.Element(0); a < field.Q; a++ {
			if got := field.MontgomeryReduce(field.ToMontgomery(a)); mod(int64(got)) != int64(a) {
				t.Fatalf("MontgomeryReduce(ToMontgomery(%d)) = %d", a, got)
			}
		}
	})
}

func TestMontgomeryMul(t *testing.T) {
	for _, tc := range [][2]field.Element{{0, 0}, {1, 1}, {3328, 3328}, {-1664, 1664}, {17, 1729}} {
		a, b := tc[0], tc[1]
		got := field.MontgomeryMul(field.ToMontgomery(a), b)
		assert.Equal(t, mod(int64(a)*int64(b)), mod(int64(got)), "%d * %d", a, b)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, field.Element(0), field.Normalize(-3329))
	assert.Equal(t, field.Element(3328), field.Normalize(-1))
	assert.Equal(t, field.Element(1664), field.Normalize(-1665))
	assert.Equal(t, field.Element(1665), field.Normalize(1665))

	for x := field.Element(-field.BarrettInputBound); x <= field.BarrettInputBound; x++ {
		if y := field.Normalize(x); int64(y) != mod(int64(x)) {
			t.Fatalf("Normalize(%d) = %d", x, y)
		}
	}
}

func TestReduceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 5000
	properties := gopter.NewProperties(parameters)

	properties.Property("BarrettReduce is congruent and bounded", prop.ForAll(
		func(x int32) bool {
			y := field.BarrettReduce(field.Element(x))
			return mod(int64(y)) == mod(int64(x)) && y < field.Q && y > -field.Q
		},
		gen.Int32Range(-field.BarrettInputBound, field.BarrettInputBound),
	))

	properties.Property("MontgomeryReduce divides by R", prop.ForAll(
		func(x int32) bool {
			y := field.MontgomeryReduce(field.Element(x))
			return mod(int64(y)*field.MontgomeryR) == mod(int64(x))
		},
		gen.Int32Range(-field.MontgomeryInputBound, field.MontgomeryInputBound),
	))

	properties.Property("ToMontgomery round trips", prop.ForAll(
		func(x int32) bool {
			y := field.MontgomeryReduce(field.ToMontgomery(field.Element(x)))
			return mod(int64(y)) == mod(int64(x))
		},
		gen.Int32Range(-field.MontgomeryInputBound/field.MontgomeryRSquared, field.MontgomeryInputBound/field.MontgomeryRSquared),
	))

	properties.Property("MontgomeryMul multiplies", prop.ForAll(
		func(a, b int32) bool {
			y := field.MontgomeryMul(field.ToMontgomery(field.Element(a)), field.Element(b))
			return mod(int64(y)) == mod(int64(a)*int64(b))
		},
		gen.Int32Range(-field.Q, field.Q),
		gen.Int32Range(-field.Q, field.Q),
	))

	properties.TestingRun(t)
}

func BenchmarkReduce(b *testing.B) {
	b.Run("Barrett", func(b *testing.B) {
		x := field.Element(12345)
		for i := 0; i < b.N; i++ {
			x = field.BarrettReduce(x + 54321)
		}
	})

	b.Run("Montgomery", func(b *testing.B) {
		x := field.Element(12345)
		for i := 0; i < b.N; i++ {
			x = field.MontgomeryReduce(x * 1353)
		}
	})
}

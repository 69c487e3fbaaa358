package decimal

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecision(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"integer", 5, 0},
		{"zero", 0, 0},
		{"one place", 10.5, 1},
		{"two places", 0.25, 2},
		{"negative", -3.125, 3},
		{"float artifact", 0.1 + 0.2, 17},
		{"tiny", 0.0000001, 7},
		{"large integer", 1e21, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Precision(tt.in))
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name     string
		num1     float64
		num2     float64
		expected float64
	}{
		{"floating point drift", 0.3, 0.1, 0.2},
		{"integers", 5, 3, 2},
		{"mixed precision", 10.5, 3, 7.5},
		{"negative result", 0.1, 0.3, -0.2},
		{"money", 1.1, 0.22, 0.88},
		{"subtract negative", 0.1, -0.2, 0.3},
		{"same value", 2.675, 2.675, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sub(tt.num1, tt.num2))
		})
	}
}

func TestSubPrecisionOfResult(t *testing.T) {
	got := Sub(10.25, 0.05)
	assert.Equal(t, 10.2, got)
	assert.LessOrEqual(t, Precision(got), 2)
}

func TestSubNonFinitePropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Sub(math.NaN(), 1)))
	assert.True(t, math.IsNaN(Sub(1, math.NaN())))
	assert.True(t, math.IsInf(Sub(math.Inf(1), 1), 1))
	assert.True(t, math.IsInf(Sub(1, math.Inf(1)), -1))
	assert.True(t, math.IsNaN(Sub(math.Inf(1), math.Inf(1))))
}

func TestAdd(t *testing.T) {
	assert.Equal(t, 0.3, Add(0.1, 0.2))

	total := 0.0
	for _, amount := range []float64{19.99, 0.01, 5.1, 0.2} {
		total = Add(total, amount)
	}
	assert.Equal(t, 25.3, total)
}

// randomDecimal returns a decimal literal with at most ten fractional digits
// and few enough significant digits to survive a float64 round trip.
func randomDecimal(r *rand.Rand) string {
	places := r.IntN(11)
	s := fmt.Sprintf("%d", r.IntN(10000))
	if places > 0 {
		s += fmt.Sprintf(".%0*d", places, r.Int64N(int64(math.Pow10(places))))
	}
	if r.IntN(2) == 0 && s != "0" {
		s = "-" + s
	}
	return s
}

func TestSubMatchesExactReference(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		sa, sb := randomDecimal(r), randomDecimal(r)
		a, err := stddec.NewFromString(sa)
		require.NoError(t, err)
		b, err := stddec.NewFromString(sb)
		require.NoError(t, err)
		fa, fb := a.InexactFloat64(), b.InexactFloat64()

		places := max(Precision(fa), Precision(fb))
		want, _ := a.Sub(b).Round(int32(places)).Float64()

		got := Sub(fa, fb)
		if got != want {
			t.Fatalf("Sub(%s, %s) = %v, want %v", sa, sb, got, want)
		}
	}
}

func TestDiff(t *testing.T) {
	a := stddec.RequireFromString("12.50")
	b := stddec.RequireFromString("2.125")
	got := Diff(a, b)
	assert.Equal(t, "10.375", got.String())
	assert.Equal(t, 3, Places(got))

	assert.Equal(t, "7", Diff(stddec.NewFromInt(10), stddec.NewFromInt(3)).String())
}

func TestPlaces(t *testing.T) {
	assert.Equal(t, 0, Places(stddec.NewFromInt(42)))
	assert.Equal(t, 2, Places(stddec.RequireFromString("1.50")))
	assert.Equal(t, 0, Places(stddec.New(5, 3)))
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().IsZero())
	got := Sum(stddec.RequireFromString("0.1"), stddec.RequireFromString("0.2"), stddec.NewFromInt(3))
	assert.Equal(t, "3.3", got.String())
}

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/physunit"
	"github.com/hupe1980/physunit/scale"
)

func TestScales(t *testing.T) {
	tests := []struct {
		name string
		unit physunit.Unit
		want scale.Factor
	}{
		{"Gram", Gram, scale.MustNew(1, 1000)},
		{"Pound", Pound, scale.MustNew(45359237, 100000000)},
		{"Mile", Mile, scale.MustNew(1609344, 1000)},
		{"Inch", Inch, scale.MustNew(254, 10000)},
		{"Yard", Yard, scale.MustNew(9144, 10000)},
		{"Millisecond", Millisecond, scale.MustNew(1, 1000)},
		{"Day", Day, scale.MustNew(86400, 1)},
		{"KilometerPerHour", KilometerPerHour, scale.MustNew(1000, 3600)},
		{"KiloCalorie", KiloCalorie, scale.MustNew(4184, 1)},
		{"GForce", GForce, scale.MustNew(49, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.Scale())
			assert.Same(t, Mechanics, tt.unit.System())
		})
	}
}

func TestAliases(t *testing.T) {
	assert.Equal(t, Mass, Kilogram)
	assert.Equal(t, Length, Meter)
	assert.Equal(t, Time, Second)
	assert.Equal(t, Speed, MeterPerSecond)
	assert.Equal(t, Energy, Joule)
}

func TestConversions(t *testing.T) {
	lb, err := physunit.New(Pound, 1.0).In(Gram)
	require.NoError(t, err)
	assert.InDelta(t, 453.59237, lb, 1e-9)

	ft, err := physunit.New(Yard, 1).In(Inch)
	require.NoError(t, err)
	assert.Equal(t, 36, ft)

	kcal, err := physunit.New(KiloCalorie, 1.0).In(Joule)
	require.NoError(t, err)
	assert.Equal(t, 4184.0, kcal)

	// Force times length is energy.
	e, err := physunit.New(Force, 2.0).Mul(physunit.New(Kilometer, 3.0))
	require.NoError(t, err)
	kj, err := e.In(KiloJoule)
	require.NoError(t, err)
	assert.Equal(t, 6.0, kj)
}

package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireConverts(t *testing.T, value float64, from, to *Unit, expected float64) {
	result, err := Convert(value, from, to)
	require.NoError(t, err)
	require.InDelta(t, expected, result, 1e-7)
}

func TestConvertMetricLength(t *testing.T) {
	requireConverts(t, 1500, Metre, Kilometre, 1.5)
	requireConverts(t, 2.5, Kilometre, Metre, 2500)
	requireConverts(t, 3, Metre, Centimetre, 300)
	requireConverts(t, 1, NauticalMile, Metre, 1852)
}

func TestConvertWithinImperialIsExact(t *testing.T) {
	// same-system conversions go through the system base, so whole number
	// factors come out exact
	result, err := Convert(12, Inch, Foot)
	require.NoError(t, err)
	require.Equal(t, 1.0, result)

	result, err = Convert(1, Mile, Foot)
	require.NoError(t, err)
	require.Equal(t, 5280.0, result)

	result, err = Convert(3, Foot, Yard)
	require.NoError(t, err)
	require.Equal(t, 1.0, result)
}

func TestConvertAcrossSystems(t *testing.T) {
	requireConverts(t, 1, Inch, Centimetre, 2.54)
	requireConverts(t, 1, Mile, Kilometre, 1.609344)
	requireConverts(t, 100, Metre, Yard, 109.3613298)
}

func TestConvertTemperature(t *testing.T) {
	requireConverts(t, -40, Celsius, Fahrenheit, -40)
	requireConverts(t, -40, Fahrenheit, Celsius, -40)
	requireConverts(t, 10, Celsius, Fahrenheit, 50)
	requireConverts(t, 100, Fahrenheit, Celsius, 37.7777778)
	requireConverts(t, 100, Celsius, Kelvin, 373.15)
	requireConverts(t, 550, Kelvin, Celsius, 276.85)
	requireConverts(t, 70, Fahrenheit, Kelvin, 294.2611111)
}

func TestConvertMass(t *testing.T) {
	requireConverts(t, 2500, Gram, Kilogram, 2.5)
	requireConverts(t, 1, Pound, Kilogram, 0.45359237)

	// 14 pounds to the stone, exactly
	result, err := Convert(14, Pound, Stone)
	require.NoError(t, err)
	require.Equal(t, 1.0, result)
}

func TestConvertVolume(t *testing.T) {
	requireConverts(t, 1, GallonUK, Litre, 4.54609)
	requireConverts(t, 1, GallonUS, Litre, 3.785411784)

	// UK and US gallons are different systems, so they route through litres
	requireConverts(t, 1, GallonUK, GallonUS, 1.2009499)

	result, err := Convert(1, GallonUS, PintUS)
	require.NoError(t, err)
	require.Equal(t, 8.0, result)
}

func TestConvertPower(t *testing.T) {
	requireConverts(t, 1, Horsepower, Watt, 745.6998716)
	requireConverts(t, 2, Kilowatt, Watt, 2000)
}

func TestConvertTorque(t *testing.T) {
	requireConverts(t, 1, FootPound, NewtonMetre, 1.3558179)

	result, err := Convert(12, InchPound, FootPound)
	require.NoError(t, err)
	require.Equal(t, 1.0, result)
}

func TestConvertForce(t *testing.T) {
	requireConverts(t, 1, PoundForce, Newton, 4.4482216)
	requireConverts(t, 1, KilogramForce, Newton, 9.80665)
}

func TestConvertEnergy(t *testing.T) {
	requireConverts(t, 1, KilowattHour, Joule, 3.6e6)
	requireConverts(t, 1000, Calorie, Kilocalorie, 1)
	requireConverts(t, 1, BTU, Joule, 1055.05585262)
}

func TestConvertSameUnit(t *testing.T) {
	requireConverts(t, 3.25, Litre, Litre, 3.25)
}

func TestConvertRoundTrip(t *testing.T) {
	out, err := Convert(123.456, Metre, Foot)
	require.NoError(t, err)
	back, err := Convert(out, Foot, Metre)
	require.NoError(t, err)
	require.InDelta(t, 123.456, back, 1e-9)
}

func TestConvertAcrossDimensionsFails(t *testing.T) {
	_, err := Convert(1, Metre, Kilogram)
	require.Error(t, err)
}

func TestConvertNilUnitFails(t *testing.T) {
	_, err := Convert(1, nil, Kilogram)
	require.Error(t, err)
}

func TestUnitsForListsBaseFirst(t *testing.T) {
	units := UnitsFor(DimensionTemperature)
	require.Len(t, units, 3)
	require.Equal(t, "Celsius", units[0].Name())

	require.NotEmpty(t, UnitsFor(DimensionLength))
	require.NotEmpty(t, UnitsFor(DimensionEnergy))
}

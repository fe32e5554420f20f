package lib

type dimension int

const (
	DimensionLength dimension = iota
	DimensionArea
	DimensionMass
	DimensionVolume
	DimensionTemperature
	DimensionPower
	DimensionTorque
	DimensionForce
	DimensionEnergy
)

func (d dimension) String() string {
	switch d {
	case DimensionLength:
		return "Length"
	case DimensionArea:
		return "Area"
	case DimensionMass:
		return "Mass"
	case DimensionVolume:
		return "Volume"
	case DimensionTemperature:
		return "Temperature"
	case DimensionPower:
		return "Power"
	case DimensionTorque:
		return "Torque"
	case DimensionForce:
		return "Force"
	case DimensionEnergy:
		return "Energy"
	default:
		return "?"
	}
}

type system int

const (
	SystemMetric system = iota
	SystemImperial
	SystemUS // only used for volume
)

// Unit converts to and from the base unit of its dimension. A nil toBase or
// fromBase means the unit is the base. Units that share a non-metric system
// and dimension also convert through a system base, which keeps
// within-system factors exact (12 inches to the foot) instead of routing
// through SI.
type Unit struct {
	name           string
	dimension      dimension
	system         system
	toBase         func(float64) float64
	fromBase       func(float64) float64
	toSystemBase   func(float64) float64
	fromSystemBase func(float64) float64
}

func (u *Unit) Name() string {
	return u.name
}

func (u *Unit) String() string {
	return u.name
}

// Length. Base: metre. Imperial system base: inch.
var (
	Metre      = &Unit{name: "Metre", dimension: DimensionLength}
	Millimetre = &Unit{
		name: "Millimetre", dimension: DimensionLength,
		toBase: func(v float64) float64 { return v / 1e3 }, fromBase: func(v float64) float64 { return v * 1e3 },
	}
	Centimetre = &Unit{
		name: "Centimetre", dimension: DimensionLength,
		toBase: func(v float64) float64 { return v / 100 }, fromBase: func(v float64) float64 { return v * 100 },
	}
	Kilometre = &Unit{
		name: "Kilometre", dimension: DimensionLength,
		toBase: func(v float64) float64 { return v * 1e3 }, fromBase: func(v float64) float64 { return v / 1e3 },
	}
	NauticalMile = &Unit{
		name: "NauticalMile", dimension: DimensionLength,
		toBase: func(v float64) float64 { return v * 1852 }, fromBase: func(v float64) float64 { return v / 1852 },
	}
	Inch = &Unit{
		name: "Inch", dimension: DimensionLength, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.0254 }, fromBase: func(v float64) float64 { return v / 0.0254 },
	}
	Foot = &Unit{
		name: "Foot", dimension: DimensionLength, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.3048 }, fromBase: func(v float64) float64 { return v / 0.3048 },
		toSystemBase: func(v float64) float64 { return v * 12 }, fromSystemBase: func(v float64) float64 { return v / 12 },
	}
	Yard = &Unit{
		name: "Yard", dimension: DimensionLength, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.9144 }, fromBase: func(v float64) float64 { return v / 0.9144 },
		toSystemBase: func(v float64) float64 { return v * 36 }, fromSystemBase: func(v float64) float64 { return v / 36 },
	}
	Mile = &Unit{
		name: "Mile", dimension: DimensionLength, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 1609.344 }, fromBase: func(v float64) float64 { return v / 1609.344 },
		toSystemBase: func(v float64) float64 { return v * 63360 }, fromSystemBase: func(v float64) float64 { return v / 63360 },
	}
)

// Area. Base: square metre. Imperial system base: square foot.
var (
	SquareMetre      = &Unit{name: "SquareMetre", dimension: DimensionArea}
	SquareCentimetre = &Unit{
		name: "SquareCentimetre", dimension: DimensionArea,
		toBase: func(v float64) float64 { return v / 1e4 }, fromBase: func(v float64) float64 { return v * 1e4 },
	}
	Hectare = &Unit{
		name: "Hectare", dimension: DimensionArea,
		toBase: func(v float64) float64 { return v * 1e4 }, fromBase: func(v float64) float64 { return v / 1e4 },
	}
	SquareKilometre = &Unit{
		name: "SquareKilometre", dimension: DimensionArea,
		toBase: func(v float64) float64 { return v * 1e6 }, fromBase: func(v float64) float64 { return v / 1e6 },
	}
	SquareFoot = &Unit{
		name: "SquareFoot", dimension: DimensionArea, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.09290304 }, fromBase: func(v float64) float64 { return v / 0.09290304 },
	}
	SquareYard = &Unit{
		name: "SquareYard", dimension: DimensionArea, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.83612736 }, fromBase: func(v float64) float64 { return v / 0.83612736 },
		toSystemBase: func(v float64) float64 { return v * 9 }, fromSystemBase: func(v float64) float64 { return v / 9 },
	}
	Acre = &Unit{
		name: "Acre", dimension: DimensionArea, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 4046.8564224 }, fromBase: func(v float64) float64 { return v / 4046.8564224 },
		toSystemBase: func(v float64) float64 { return v * 43560 }, fromSystemBase: func(v float64) float64 { return v / 43560 },
	}
	SquareMile = &Unit{
		name: "SquareMile", dimension: DimensionArea, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 2589988.110336 }, fromBase: func(v float64) float64 { return v / 2589988.110336 },
		toSystemBase: func(v float64) float64 { return v * 27878400 }, fromSystemBase: func(v float64) float64 { return v / 27878400 },
	}
)

// Mass. Base: kilogram. Imperial system base: ounce.
var (
	Kilogram = &Unit{name: "Kilogram", dimension: DimensionMass}
	Gram     = &Unit{
		name: "Gram", dimension: DimensionMass,
		toBase: func(v float64) float64 { return v / 1e3 }, fromBase: func(v float64) float64 { return v * 1e3 },
	}
	Milligram = &Unit{
		name: "Milligram", dimension: DimensionMass,
		toBase: func(v float64) float64 { return v / 1e6 }, fromBase: func(v float64) float64 { return v * 1e6 },
	}
	Tonne = &Unit{
		name: "Tonne", dimension: DimensionMass,
		toBase: func(v float64) float64 { return v * 1e3 }, fromBase: func(v float64) float64 { return v / 1e3 },
	}
	Ounce = &Unit{
		name: "Ounce", dimension: DimensionMass, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.028349523125 }, fromBase: func(v float64) float64 { return v / 0.028349523125 },
	}
	Pound = &Unit{
		name: "Pound", dimension: DimensionMass, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.45359237 }, fromBase: func(v float64) float64 { return v / 0.45359237 },
		toSystemBase: func(v float64) float64 { return v * 16 }, fromSystemBase: func(v float64) float64 { return v / 16 },
	}
	Stone = &Unit{
		name: "Stone", dimension: DimensionMass, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 6.35029318 }, fromBase: func(v float64) float64 { return v / 6.35029318 },
		toSystemBase: func(v float64) float64 { return v * 224 }, fromSystemBase: func(v float64) float64 { return v / 224 },
	}
)

// Volume. Base: litre. Imperial system base: UK gallon; US system base: US
// gallon.
var (
	Litre      = &Unit{name: "Litre", dimension: DimensionVolume}
	Millilitre = &Unit{
		name: "Millilitre", dimension: DimensionVolume,
		toBase: func(v float64) float64 { return v / 1e3 }, fromBase: func(v float64) float64 { return v * 1e3 },
	}
	CubicMetre = &Unit{
		name: "CubicMetre", dimension: DimensionVolume,
		toBase: func(v float64) float64 { return v * 1e3 }, fromBase: func(v float64) float64 { return v / 1e3 },
	}
	GallonUK = &Unit{
		name: "GallonUK", dimension: DimensionVolume, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 4.54609 }, fromBase: func(v float64) float64 { return v / 4.54609 },
	}
	PintUK = &Unit{
		name: "PintUK", dimension: DimensionVolume, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.56826125 }, fromBase: func(v float64) float64 { return v / 0.56826125 },
		toSystemBase: func(v float64) float64 { return v / 8 }, fromSystemBase: func(v float64) float64 { return v * 8 },
	}
	FluidOunceUK = &Unit{
		name: "FluidOunceUK", dimension: DimensionVolume, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.0284130625 }, fromBase: func(v float64) float64 { return v / 0.0284130625 },
		toSystemBase: func(v float64) float64 { return v / 160 }, fromSystemBase: func(v float64) float64 { return v * 160 },
	}
	GallonUS = &Unit{
		name: "GallonUS", dimension: DimensionVolume, system: SystemUS,
		toBase: func(v float64) float64 { return v * 3.785411784 }, fromBase: func(v float64) float64 { return v / 3.785411784 },
	}
	QuartUS = &Unit{
		name: "QuartUS", dimension: DimensionVolume, system: SystemUS,
		toBase: func(v float64) float64 { return v * 0.946352946 }, fromBase: func(v float64) float64 { return v / 0.946352946 },
		toSystemBase: func(v float64) float64 { return v / 4 }, fromSystemBase: func(v float64) float64 { return v * 4 },
	}
	PintUS = &Unit{
		name: "PintUS", dimension: DimensionVolume, system: SystemUS,
		toBase: func(v float64) float64 { return v * 0.473176473 }, fromBase: func(v float64) float64 { return v / 0.473176473 },
		toSystemBase: func(v float64) float64 { return v / 8 }, fromSystemBase: func(v float64) float64 { return v * 8 },
	}
	FluidOunceUS = &Unit{
		name: "FluidOunceUS", dimension: DimensionVolume, system: SystemUS,
		toBase: func(v float64) float64 { return v * 0.0295735295625 }, fromBase: func(v float64) float64 { return v / 0.0295735295625 },
		toSystemBase: func(v float64) float64 { return v / 128 }, fromSystemBase: func(v float64) float64 { return v * 128 },
	}
)

// Temperature. Base: Celsius. Kelvin and Fahrenheit convert with offset
// functions, not factors.
var (
	Celsius = &Unit{name: "Celsius", dimension: DimensionTemperature}
	Kelvin  = &Unit{
		name: "Kelvin", dimension: DimensionTemperature,
		toBase: func(v float64) float64 { return v - 273.15 }, fromBase: func(v float64) float64 { return v + 273.15 },
	}
	Fahrenheit = &Unit{
		name: "Fahrenheit", dimension: DimensionTemperature,
		toBase: func(v float64) float64 { return (v - 32) / 9 * 5 }, fromBase: func(v float64) float64 { return v / 5 * 9 + 32 },
	}
)

// Power. Base: watt.
var (
	Watt     = &Unit{name: "Watt", dimension: DimensionPower}
	Kilowatt = &Unit{
		name: "Kilowatt", dimension: DimensionPower,
		toBase: func(v float64) float64 { return v * 1e3 }, fromBase: func(v float64) float64 { return v / 1e3 },
	}
	Megawatt = &Unit{
		name: "Megawatt", dimension: DimensionPower,
		toBase: func(v float64) float64 { return v * 1e6 }, fromBase: func(v float64) float64 { return v / 1e6 },
	}
	Horsepower = &Unit{
		name: "Horsepower", dimension: DimensionPower, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 745.6998715822702 }, fromBase: func(v float64) float64 { return v / 745.6998715822702 },
	}
	MetricHorsepower = &Unit{
		name: "MetricHorsepower", dimension: DimensionPower,
		toBase: func(v float64) float64 { return v * 735.49875 }, fromBase: func(v float64) float64 { return v / 735.49875 },
	}
)

// Torque. Base: newton metre. Imperial system base: foot-pound.
var (
	NewtonMetre = &Unit{name: "NewtonMetre", dimension: DimensionTorque}
	FootPound   = &Unit{
		name: "FootPound", dimension: DimensionTorque, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 1.3558179483314004 }, fromBase: func(v float64) float64 { return v / 1.3558179483314004 },
	}
	InchPound = &Unit{
		name: "InchPound", dimension: DimensionTorque, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 0.1129848290276167 }, fromBase: func(v float64) float64 { return v / 0.1129848290276167 },
		toSystemBase: func(v float64) float64 { return v / 12 }, fromSystemBase: func(v float64) float64 { return v * 12 },
	}
)

// Force. Base: newton.
var (
	Newton     = &Unit{name: "Newton", dimension: DimensionForce}
	Kilonewton = &Unit{
		name: "Kilonewton", dimension: DimensionForce,
		toBase: func(v float64) float64 { return v * 1e3 }, fromBase: func(v float64) float64 { return v / 1e3 },
	}
	Dyne = &Unit{
		name: "Dyne", dimension: DimensionForce,
		toBase: func(v float64) float64 { return v * 1e-5 }, fromBase: func(v float64) float64 { return v / 1e-5 },
	}
	KilogramForce = &Unit{
		name: "KilogramForce", dimension: DimensionForce,
		toBase: func(v float64) float64 { return v * 9.80665 }, fromBase: func(v float64) float64 { return v / 9.80665 },
	}
	PoundForce = &Unit{
		name: "PoundForce", dimension: DimensionForce, system: SystemImperial,
		toBase: func(v float64) float64 { return v * 4.4482216152605 }, fromBase: func(v float64) float64 { return v / 4.4482216152605 },
	}
)

// Energy. Base: joule.
var (
	Joule     = &Unit{name: "Joule", dimension: DimensionEnergy}
	Kilojoule = &Unit{
		name: "Kilojoule", dimension: DimensionEnergy,
		toBase: func(v float64) float64 { return v * 1e3 }, fromBase: func(v float64) float64 { return v / 1e3 },
	}
	Calorie = &Unit{
		name: "Calorie", dimension: DimensionEnergy,
		toBase: func(v float64) float64 { return v * 4.184 }, fromBase: func(v float64) float64 { return v / 4.184 },
	}
	Kilocalorie = &Unit{
		name: "Kilocalorie", dimension: DimensionEnergy,
		toBase: func(v float64) float64 { return v * 4184 }, fromBase: func(v float64) float64 { return v / 4184 },
	}
	WattHour = &Unit{
		name: "WattHour", dimension: DimensionEnergy,
		toBase: func(v float64) float64 { return v * 3600 }, fromBase: func(v float64) float64 { return v / 3600 },
	}
	KilowattHour = &Unit{
		name: "KilowattHour", dimension: DimensionEnergy,
		toBase: func(v float64) float64 { return v * 3.6e6 }, fromBase: func(v float64) float64 { return v / 3.6e6 },
	}
	BTU = &Unit{
		name: "BTU", dimension: DimensionEnergy,
		toBase: func(v float64) float64 { return v * 1055.05585262 }, fromBase: func(v float64) float64 { return v / 1055.05585262 },
	}
)

// UnitsFor lists the units of a dimension, base unit first.
func UnitsFor(d dimension) []*Unit {
	switch d {
	case DimensionLength:
		return []*Unit{Metre, Millimetre, Centimetre, Kilometre, NauticalMile, Inch, Foot, Yard, Mile}
	case DimensionArea:
		return []*Unit{SquareMetre, SquareCentimetre, Hectare, SquareKilometre, SquareFoot, SquareYard, Acre, SquareMile}
	case DimensionMass:
		return []*Unit{Kilogram, Gram, Milligram, Tonne, Ounce, Pound, Stone}
	case DimensionVolume:
		return []*Unit{Litre, Millilitre, CubicMetre, GallonUK, PintUK, FluidOunceUK, GallonUS, QuartUS, PintUS, FluidOunceUS}
	case DimensionTemperature:
		return []*Unit{Celsius, Kelvin, Fahrenheit}
	case DimensionPower:
		return []*Unit{Watt, Kilowatt, Megawatt, Horsepower, MetricHorsepower}
	case DimensionTorque:
		return []*Unit{NewtonMetre, FootPound, InchPound}
	case DimensionForce:
		return []*Unit{Newton, Kilonewton, Dyne, KilogramForce, PoundForce}
	case DimensionEnergy:
		return []*Unit{Joule, Kilojoule, Calorie, Kilocalorie, WattHour, KilowattHour, BTU}
	default:
		return nil
	}
}

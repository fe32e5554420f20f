package lib

import "math"

// Constant is a named value usable as a bare identifier in expressions.
// The physical constants keep the original glyph names as aliases so
// expressions pasted from scientific sources still evaluate.
type Constant struct {
	Name  string
	Value float64
}

var constantRegister = []Constant{
	{Name: "pi", Value: math.Pi},
	{Name: "e", Value: math.E},
	{Name: "phi", Value: 1.61803},
	{Name: "c", Value: 299792458}, // speed of light, m/s
	{Name: "h", Value: 6.626e-34}, // Planck constant
	{Name: "g", Value: 6.674e-11}, // gravitational constant
}

var constantAliases = map[string]string{
	"π": "pi",
	"Φ": "phi",
	"C": "c",
	"ℎ": "h",
	"G": "g",
}

func LookupConstant(name string) (float64, bool) {
	if canonical, ok := constantAliases[name]; ok {
		name = canonical
	}
	for _, c := range constantRegister {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// Constants returns the registered constants under their canonical names.
func Constants() []Constant {
	all := make([]Constant, len(constantRegister))
	copy(all, constantRegister)
	return all
}

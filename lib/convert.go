package lib

import "fmt"

// Convert converts value from one unit to another of the same dimension.
// Two non-metric units of the same system convert through the system base
// so within-system factors stay exact; everything else routes through the
// dimension's SI base.
func Convert(value float64, from, to *Unit) (float64, error) {
	if from == nil || to == nil {
		return 0, fmt.Errorf("conversion requires both units to be set")
	}
	if from.dimension != to.dimension {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)",
			from.name, from.dimension, to.name, to.dimension)
	}
	if from.name == to.name {
		return value, nil
	}

	toBase, fromBase := from.toBase, to.fromBase
	if from.system == to.system && from.system != SystemMetric {
		toBase, fromBase = from.toSystemBase, to.fromSystemBase
	}

	result := value
	if toBase != nil {
		result = toBase(result)
	}
	if fromBase != nil {
		result = fromBase(result)
	}
	return result, nil
}

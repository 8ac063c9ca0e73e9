package beeclust

import "errors"

// Sentinel errors for world construction and inspection.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("beeclust: grid must have at least one row and one column")
	// ErrRaggedGrid indicates input rows of differing lengths.
	ErrRaggedGrid = errors.New("beeclust: all grid rows must have the same length")
	// ErrProbability indicates a probability parameter outside [0, 1].
	ErrProbability = errors.New("beeclust: probabilities must lie within [0, 1]")
	// ErrNegativeParam indicates a negative coefficient or count.
	ErrNegativeParam = errors.New("beeclust: parameter must not be negative")
	// ErrTemperatureOrder indicates T_cooler <= T_env <= T_heater is violated.
	ErrTemperatureOrder = errors.New("beeclust: temperatures must satisfy T_cooler <= T_env <= T_heater")
	// ErrNoBees indicates a score request on a grid without bees.
	ErrNoBees = errors.New("beeclust: no bees on the grid")
)

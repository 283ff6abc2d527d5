package hotel

// Assignment is the outcome of a center selection plus nearest-center
// binding.
//
// IsValid must be checked first: it is false for an empty graph or, for
// KCenters, an out-of-range k, in which case every other field is zero.
type Assignment struct {
	// Centers lists the chosen center vertices in selection order.
	Centers []int64

	// AssignedTo maps every vertex that can reach a center to its
	// nearest one. Ties go to the earlier entry of Centers.
	AssignedTo map[int64]int64

	// MaxDistance is the largest assignment distance among assigned
	// vertices.
	MaxDistance float64

	// MeanDistance averages assignment distance over assigned vertices
	// only; unassigned vertices do not dilute or inflate it.
	MeanDistance float64

	// Unassigned lists vertices unable to reach any center, in
	// insertion order.
	Unassigned []int64

	// IsValid reports whether the selection ran at all.
	IsValid bool
}

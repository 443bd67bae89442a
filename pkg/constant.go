package pkg

const (
	// INF_WEIGHT marks an unreached distance label. Any real path cost stays
	// far below this value.
	INF_WEIGHT float64 = 1e15

	EPSILON = 1e-9
)

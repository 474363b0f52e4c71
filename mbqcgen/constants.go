package mbqcgen

// Method name constants, used to prefix validation errors with the
// offending constructor (teacher's builder/constants.go MethodX style).
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
)

// Minimum vertex counts per topology.
const (
	MinPathNodes   = 2
	MinCycleNodes  = 3
	MinStarNodes   = 2
	MinWheelNodes  = 4
	MinGridRows    = 1
	MinGridCols    = 1
	MinPartition   = 1
	MinProbability = 0.0
	MaxProbability = 1.0
)

// CenterVertexID names the hub vertex of Star/Wheel.
const CenterVertexID = "Center"

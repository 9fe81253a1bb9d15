package parameter

// Solver tuning
const (
	// PhysicsSubsteps splits each step to keep fast balls from tunneling through pegs
	PhysicsSubsteps = 4

	// Restitution is the bounce factor for ball contacts
	// Zero keeps balls inside the pyramid; any bounce flings edge balls past the last row
	Restitution = 0.0

	// MaxBallSpeed clamps dynamic body speed in world units per second
	MaxBallSpeed = 1500.0

	// BroadphaseCellSize is the uniform grid cell edge, about one peg spacing
	BroadphaseCellSize = 50.0

	// PositionCorrection is the fraction of penetration resolved per substep
	PositionCorrection = 0.8

	// PenetrationSlop is the overlap tolerated before correction kicks in
	PenetrationSlop = 0.01
)

// SolverGravity is the solver's own downward acceleration in units/s^2
// Tiny next to the per-tick fall override; kept so free balls never hover
const SolverGravity = -9.81

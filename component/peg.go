package component

// PegComponent marks a static obstacle; position lives in the solver
type PegComponent struct {
	Row   int
	Index int
}

package engine

// System is a unit of per-tick simulation logic
// Systems that also implement event.Handler[*World] are routed events at tick start
type System interface {
	// Init resets internal state; called once before the first tick
	Init()

	// Name identifies the system in logs
	Name() string

	// Priority orders systems; lower runs first
	Priority() int

	// Update runs once per tick under the world lock
	Update()
}

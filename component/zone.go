package component

// ZoneComponent is a multiplier trigger; created at board generation, never mutated
type ZoneComponent struct {
	Power float64 // Payout multiplier, >= 0
	Slot  int     // Slot counter value the power was derived from
}

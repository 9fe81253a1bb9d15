package engine

// Economy is the player's balance
// Mutated only on the tick goroutine: BallSystem spends, ScoringSystem credits
type Economy struct {
	balance float64
}

// NewEconomy creates an economy holding the starting balance
func NewEconomy(start float64) *Economy {
	return &Economy{balance: start}
}

// Balance returns the current balance
func (e *Economy) Balance() float64 {
	return e.balance
}

// CanAfford reports whether cost can be spent without going below zero
func (e *Economy) CanAfford(cost float64) bool {
	return cost >= 0 && e.balance >= cost
}

// Spend debits cost if affordable; a refusal leaves the balance untouched
func (e *Economy) Spend(cost float64) bool {
	if !e.CanAfford(cost) {
		return false
	}
	e.balance -= cost
	return true
}

// Credit adds a payout; negative amounts are ignored
func (e *Economy) Credit(amount float64) {
	if amount > 0 {
		e.balance += amount
	}
}

// Grant unconditionally sets the balance, bypassing every guard
// Debug only; reachable solely through DebugSystem
func (e *Economy) Grant(amount float64) {
	e.balance = amount
}

package parameter

// Economy
const (
	// StartingBalance is the balance at session start
	StartingBalance = 1000.0

	// SpawnCost is debited for every ball released
	SpawnCost = 100.0

	// PayoutBase is multiplied by zone power on a score
	PayoutBase = 100.0

	// GrantAmount is the balance set by the debug reset key
	GrantAmount = 3000.0

	// HistoryCapacity is the number of recent multipliers kept for display
	HistoryCapacity = 9
)

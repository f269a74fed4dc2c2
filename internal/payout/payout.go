// Package payout computes monthly payout cycles for held contract-units.
package payout

import "time"

const (
	// PricePerContract is the deposit owed per contract-unit.
	PricePerContract = 10000.0
	// MonthlyPayoutPerContract is paid per contract-unit every cycle.
	MonthlyPayoutPerContract = 1800.0
	// MaxCycles is the number of monthly payouts a contract-unit earns.
	MaxCycles = 60
	// payoutDay is the day of month payouts are scheduled on.
	payoutDay = 28
)

type Schedule struct {
	Contracts       int        `json:"contracts"`
	ActivatedAt     time.Time  `json:"activated_at"`
	Cycles          int        `json:"cycles"`
	RemainingCycles int        `json:"remaining_cycles"`
	MonthlyPayout   float64    `json:"monthly_payout"`
	TotalPaidToDate float64    `json:"total_paid_to_date"`
	NextPayoutDate  *time.Time `json:"next_payout_date,omitempty"`
}

// CyclesElapsed counts whole months between activation and now, clamped to [0, MaxCycles].
// A month only counts once now has reached the activation day-of-month.
func CyclesElapsed(activation, now time.Time) int {
	activation = activation.In(now.Location())
	months := (now.Year()-activation.Year())*12 + int(now.Month()) - int(activation.Month())
	if now.Day() < activation.Day() {
		months--
	}
	switch {
	case months < 0:
		return 0
	case months > MaxCycles:
		return MaxCycles
	}
	return months
}

func MonthlyPayout(contracts int) float64 {
	return float64(contracts) * MonthlyPayoutPerContract
}

func Investment(contracts int) float64 {
	return float64(contracts) * PricePerContract
}

// Compute builds the payout schedule of contracts activated at activation, as seen at now.
func Compute(contracts int, activation, now time.Time) Schedule {
	cycles := CyclesElapsed(activation, now)
	monthly := MonthlyPayout(contracts)
	s := Schedule{
		Contracts:       contracts,
		ActivatedAt:     activation,
		Cycles:          cycles,
		RemainingCycles: MaxCycles - cycles,
		MonthlyPayout:   monthly,
		TotalPaidToDate: monthly * float64(cycles),
	}
	if cycles < MaxCycles {
		act := activation.In(now.Location())
		next := time.Date(act.Year(), act.Month()+time.Month(cycles+1), payoutDay, 0, 0, 0, 0, now.Location())
		s.NextPayoutDate = &next
	}
	return s
}

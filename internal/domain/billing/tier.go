package billing

// Currency every tier is priced in. Paystack wants amounts in minor units.
const Currency = "KES"

// Tier amounts in KES (single source of truth)
const (
	TierSingle   int64 = 20
	TierDaily    int64 = 50
	TierThreeDay int64 = 75
	TierWeekly   int64 = 100
	TierMonthly  int64 = 150
)

type Tier struct {
	AmountKES int64  `json:"amount_kes"`
	Name      string `json:"name"`
}

// Tiers is the fixed set shown on the subscribe tab. No arbitrary amounts.
var Tiers = []Tier{
	{TierSingle, "Single tip access"},
	{TierDaily, "Daily tips"},
	{TierThreeDay, "3-day premium access"},
	{TierWeekly, "Weekly expert picks"},
	{TierMonthly, "Full premium month"},
}

func ValidTier(amountKES int64) bool {
	for _, t := range Tiers {
		if t.AmountKES == amountKES {
			return true
		}
	}
	return false
}

// ToMinorUnits converts a KES amount to the minor units Paystack expects.
func ToMinorUnits(amountKES int64) int64 {
	return amountKES * 100
}

// Package calc holds the pure archetype formulas the dashboard evaluates
// before saving an audit. The derived figure is embedded in the audit payload
// at save time and never recomputed server-side; this package is the
// canonical statement of the arithmetic.
package calc

// DealerInputs are the operational inputs for a dealer profit audit.
type DealerInputs struct {
	DailyOutput  float64 // units produced per day
	SellingPrice float64 // price per unit
	Electricity  float64 // monthly expense
	Rent         float64 // monthly expense
	Labor        float64 // monthly expense
	Maintenance  float64 // monthly expense
	DaysOpen     float64 // operating days per month
}

// DealerTotalOperatingExpense sums the four monthly expense lines.
func DealerTotalOperatingExpense(in DealerInputs) float64 {
	return in.Electricity + in.Rent + in.Labor + in.Maintenance
}

// DealerNetProfit is monthly revenue minus total operating expense.
func DealerNetProfit(in DealerInputs) float64 {
	return in.DailyOutput*in.DaysOpen*in.SellingPrice - DealerTotalOperatingExpense(in)
}

// HOARiskVolume is the monthly delivery exposure for an HOA site: an
// activity count, not a currency amount.
func HOARiskVolume(units, deliveriesPerUnit float64) float64 {
	return units * deliveriesPerUnit
}

// Reliability grades an industrial client's equipment reliability.
type Reliability string

const (
	ReliabilityLow    Reliability = "Low"
	ReliabilityMedium Reliability = "Medium"
	ReliabilityHigh   Reliability = "High"
)

// Multiplier maps a reliability grade to its risk multiplier. Unknown grades
// fall through to the High multiplier, matching the dashboard's ternary.
func (r Reliability) Multiplier() float64 {
	switch r {
	case ReliabilityLow:
		return 6
	case ReliabilityMedium:
		return 3
	default:
		return 1
	}
}

// IndustrialAnnualRisk is the projected annual downtime exposure.
func IndustrialAnnualRisk(reliability Reliability, downtimeCostPerHour, repairTimeHours float64) float64 {
	return reliability.Multiplier() * downtimeCostPerHour * repairTimeHours
}

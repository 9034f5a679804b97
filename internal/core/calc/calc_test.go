package calc

import "testing"

func TestDealerNetProfit(t *testing.T) {
	in := DealerInputs{
		DailyOutput:  50,
		SellingPrice: 25,
		Electricity:  2500,
		Rent:         5000,
		Labor:        12000,
		Maintenance:  3000,
		DaysOpen:     26,
	}

	if got := DealerTotalOperatingExpense(in); got != 22500 {
		t.Fatalf("expected operating expense 22500, got %v", got)
	}
	// 50 * 26 * 25 - 22500 = 32500 - 22500
	if got := DealerNetProfit(in); got != 10000 {
		t.Fatalf("expected net profit 10000, got %v", got)
	}
}

func TestDealerNetProfit_ZeroInputs(t *testing.T) {
	if got := DealerNetProfit(DealerInputs{}); got != 0 {
		t.Fatalf("expected 0 for zero inputs, got %v", got)
	}
}

func TestHOARiskVolume(t *testing.T) {
	if got := HOARiskVolume(100, 4); got != 400 {
		t.Fatalf("expected 400, got %v", got)
	}
}

func TestIndustrialAnnualRisk(t *testing.T) {
	cases := []struct {
		reliability Reliability
		want        float64
	}{
		{ReliabilityLow, 6 * 50000 * 4},
		{ReliabilityMedium, 3 * 50000 * 4},
		{ReliabilityHigh, 1 * 50000 * 4},
		{Reliability("Unknown"), 1 * 50000 * 4},
	}
	for _, tc := range cases {
		if got := IndustrialAnnualRisk(tc.reliability, 50000, 4); got != tc.want {
			t.Fatalf("reliability %s: expected %v, got %v", tc.reliability, tc.want, got)
		}
	}
	if got := IndustrialAnnualRisk(ReliabilityMedium, 50000, 4); got != 600000 {
		t.Fatalf("expected 600000, got %v", got)
	}
}

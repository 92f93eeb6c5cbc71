package valueobject

import "testing"

func TestParseAmortizationPeriod(t *testing.T) {
	tests := []struct {
		months int
		want   AmortizationPeriod
		ok     bool
	}{
		{0, AmortizationOneMonth, true},
		{1, AmortizationOneMonth, true},
		{2, AmortizationTwoMonths, true},
		{3, AmortizationThreeMonths, true},
		{6, AmortizationSixMonths, true},
		{12, AmortizationTwelveMonths, true},
		{4, 0, false},
		{24, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAmortizationPeriod(tt.months)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAmortizationPeriod(%d) = (%d, %v), want (%d, %v)", tt.months, got, ok, tt.want, tt.ok)
		}
	}
}

package valueobject

// AmortizationPeriod is the number of months an expense is spread over.
type AmortizationPeriod int

const (
	AmortizationOneMonth     AmortizationPeriod = 1
	AmortizationTwoMonths    AmortizationPeriod = 2
	AmortizationThreeMonths  AmortizationPeriod = 3
	AmortizationSixMonths    AmortizationPeriod = 6
	AmortizationTwelveMonths AmortizationPeriod = 12
)

// AmortizationPeriods lists the supported periods in ascending order.
var AmortizationPeriods = []AmortizationPeriod{
	AmortizationOneMonth,
	AmortizationTwoMonths,
	AmortizationThreeMonths,
	AmortizationSixMonths,
	AmortizationTwelveMonths,
}

// ParseAmortizationPeriod converts a month count into a supported period.
// Zero means no amortization and maps to a single month.
func ParseAmortizationPeriod(months int) (AmortizationPeriod, bool) {
	if months == 0 {
		return AmortizationOneMonth, true
	}
	for _, p := range AmortizationPeriods {
		if int(p) == months {
			return p, true
		}
	}
	return 0, false
}

// Months returns the period length in months.
func (p AmortizationPeriod) Months() int {
	return int(p)
}

package commission

import "github.com/shopspring/decimal"

// Split is the four-way division of a booking's total. The four shares sum to
// the total exactly; any one-cent rounding residue is folded into the driver
// share, the largest of the four.
type Split struct {
	Total           decimal.Decimal
	DriverShare     decimal.Decimal
	DispatcherShare decimal.Decimal
	AdminShare      decimal.Decimal
	SuperAdminShare decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

func share(total decimal.Decimal, percent int64) decimal.Decimal {
	// Round is half away from zero, which for positive money is half-up.
	return total.Mul(decimal.NewFromInt(percent)).Div(oneHundred).Round(2)
}

// ComputeSplit divides total by the configured percentages. Pure and
// deterministic; rates are assumed validated at startup.
func ComputeSplit(total decimal.Decimal, rates Rates) Split {
	split := Split{
		Total:           total.Round(2),
		DriverShare:     share(total, rates.DriverPercent),
		DispatcherShare: share(total, rates.DispatcherPercent),
		AdminShare:      share(total, rates.AdminPercent),
		SuperAdminShare: share(total, rates.SuperAdminPercent),
	}

	residue := split.Total.
		Sub(split.DriverShare).
		Sub(split.DispatcherShare).
		Sub(split.AdminShare).
		Sub(split.SuperAdminShare)
	if !residue.IsZero() {
		split.DriverShare = split.DriverShare.Add(residue)
	}

	return split
}

// Sum re-adds the four shares; equals Total by construction.
func (s Split) Sum() decimal.Decimal {
	return s.DriverShare.Add(s.DispatcherShare).Add(s.AdminShare).Add(s.SuperAdminShare)
}

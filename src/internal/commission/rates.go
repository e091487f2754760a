package commission

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var ErrInvalidRates = errors.New("commission rates must sum to exactly 100 percent")

// Rates is the four-way commission configuration in whole percents plus the
// per-hour booking rate. Loaded once at startup; bookings never change it.
type Rates struct {
	DriverPercent     int64
	DispatcherPercent int64
	AdminPercent      int64
	SuperAdminPercent int64
	HourlyRate        decimal.Decimal
}

// LoadRates reads the rate configuration from viper and validates it.
// A bad configuration is fatal at startup, never a per-booking error.
func LoadRates(v *viper.Viper) (Rates, error) {
	rates := Rates{
		DriverPercent:     v.GetInt64("commission.driver_percent"),
		DispatcherPercent: v.GetInt64("commission.dispatcher_percent"),
		AdminPercent:      v.GetInt64("commission.admin_percent"),
		SuperAdminPercent: v.GetInt64("commission.super_admin_percent"),
		HourlyRate:        decimal.NewFromInt(v.GetInt64("commission.hourly_rate")),
	}
	if err := rates.Validate(); err != nil {
		return Rates{}, err
	}
	return rates, nil
}

// Validate enforces the sum-to-100 invariant and a usable hourly rate.
func (r Rates) Validate() error {
	sum := r.DriverPercent + r.DispatcherPercent + r.AdminPercent + r.SuperAdminPercent
	if sum != 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidRates, sum)
	}
	if r.DriverPercent < 0 || r.DispatcherPercent < 0 || r.AdminPercent < 0 || r.SuperAdminPercent < 0 {
		return fmt.Errorf("%w: negative percentage", ErrInvalidRates)
	}
	if !r.HourlyRate.IsPositive() {
		return fmt.Errorf("hourly rate must be positive, got %s", r.HourlyRate)
	}
	return nil
}

// TotalAmount prices a ride: hourly rate times whole hours.
func (r Rates) TotalAmount(durationHours int64) decimal.Decimal {
	return r.HourlyRate.Mul(decimal.NewFromInt(durationHours)).Round(2)
}

package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spf13/viper"
)

func defaultRates() Rates {
	return Rates{
		DriverPercent:     75,
		DispatcherPercent: 2,
		AdminPercent:      20,
		SuperAdminPercent: 3,
		HourlyRate:        decimal.NewFromInt(400),
	}
}

func TestComputeSplitFourHourRide(t *testing.T) {
	rates := defaultRates()
	total := rates.TotalAmount(4)
	require.True(t, total.Equal(decimal.NewFromInt(1600)))

	split := ComputeSplit(total, rates)
	assert.True(t, split.DriverShare.Equal(decimal.NewFromInt(1200)), "driver share %s", split.DriverShare)
	assert.True(t, split.AdminShare.Equal(decimal.NewFromInt(320)), "admin share %s", split.AdminShare)
	assert.True(t, split.DispatcherShare.Equal(decimal.NewFromInt(32)), "dispatcher share %s", split.DispatcherShare)
	assert.True(t, split.SuperAdminShare.Equal(decimal.NewFromInt(48)), "super admin share %s", split.SuperAdminShare)
	assert.True(t, split.Sum().Equal(total))
}

func TestComputeSplitReconcilesExactly(t *testing.T) {
	rateConfigs := []Rates{
		{DriverPercent: 75, DispatcherPercent: 2, AdminPercent: 20, SuperAdminPercent: 3},
		{DriverPercent: 70, DispatcherPercent: 10, AdminPercent: 15, SuperAdminPercent: 5},
		{DriverPercent: 33, DispatcherPercent: 33, AdminPercent: 33, SuperAdminPercent: 1},
		{DriverPercent: 97, DispatcherPercent: 1, AdminPercent: 1, SuperAdminPercent: 1},
	}
	amounts := []string{
		"0.01", "0.03", "0.10", "1.00", "10.01", "99.99", "100.00",
		"123.45", "1600.00", "33333.33", "999999.99",
	}

	for _, rates := range rateConfigs {
		for _, raw := range amounts {
			total := decimal.RequireFromString(raw)
			split := ComputeSplit(total, rates)
			assert.True(t, split.Sum().Equal(total),
				"rates %+v amount %s: shares sum to %s", rates, raw, split.Sum())
		}
	}
}

func TestComputeSplitAssignsResidueToDriver(t *testing.T) {
	// 33/33/33/1 on 0.10: each 33% share rounds to 0.03 and 1% rounds to
	// 0.00, leaving a residue of 0.01 that must land on the driver.
	rates := Rates{DriverPercent: 33, DispatcherPercent: 33, AdminPercent: 33, SuperAdminPercent: 1}
	split := ComputeSplit(decimal.RequireFromString("0.10"), rates)

	assert.True(t, split.DriverShare.Equal(decimal.RequireFromString("0.04")), "driver share %s", split.DriverShare)
	assert.True(t, split.DispatcherShare.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, split.AdminShare.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, split.SuperAdminShare.IsZero())
	assert.True(t, split.Sum().Equal(decimal.RequireFromString("0.10")))
}

func TestComputeSplitDeterministic(t *testing.T) {
	rates := defaultRates()
	total := decimal.RequireFromString("123.45")

	first := ComputeSplit(total, rates)
	for i := 0; i < 10; i++ {
		again := ComputeSplit(total, rates)
		assert.True(t, first.DriverShare.Equal(again.DriverShare))
		assert.True(t, first.DispatcherShare.Equal(again.DispatcherShare))
		assert.True(t, first.AdminShare.Equal(again.AdminShare))
		assert.True(t, first.SuperAdminShare.Equal(again.SuperAdminShare))
	}
}

func TestRatesValidate(t *testing.T) {
	rates := defaultRates()
	require.NoError(t, rates.Validate())

	rates.AdminPercent = 21
	assert.ErrorIs(t, rates.Validate(), ErrInvalidRates)

	rates = defaultRates()
	rates.DriverPercent = 105
	rates.AdminPercent = -5
	rates.DispatcherPercent = 0
	rates.SuperAdminPercent = 0
	assert.ErrorIs(t, rates.Validate(), ErrInvalidRates)

	rates = defaultRates()
	rates.HourlyRate = decimal.Zero
	assert.Error(t, rates.Validate())
}

func TestLoadRates(t *testing.T) {
	v := viper.New()
	v.Set("commission.driver_percent", 75)
	v.Set("commission.dispatcher_percent", 2)
	v.Set("commission.admin_percent", 20)
	v.Set("commission.super_admin_percent", 3)
	v.Set("commission.hourly_rate", 400)

	rates, err := LoadRates(v)
	require.NoError(t, err)
	assert.Equal(t, int64(75), rates.DriverPercent)
	assert.True(t, rates.HourlyRate.Equal(decimal.NewFromInt(400)))

	v.Set("commission.admin_percent", 30)
	_, err = LoadRates(v)
	assert.ErrorIs(t, err, ErrInvalidRates)
}

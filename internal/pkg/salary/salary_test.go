package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 4, hour, minute, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	p := DefaultPolicy()
	monthly := decimal.NewFromInt(30000)

	d := Calculate(monthly, 2, 3, 1.5, p)

	// daily rate 1000, hourly rate 125
	assert.True(t, d.Off.Equal(decimal.NewFromInt(2000)), "off deduction: %s", d.Off)
	assert.True(t, d.Late.Equal(decimal.NewFromInt(1500)), "late deduction: %s", d.Late)
	assert.True(t, d.EarlyLeave.Equal(decimal.NewFromFloat(187.5)), "early leave deduction: %s", d.EarlyLeave)
	assert.True(t, d.Total.Equal(decimal.NewFromFloat(3687.5)), "total: %s", d.Total)

	net := NetSalary(monthly, d)
	assert.True(t, net.Equal(decimal.NewFromFloat(26312.5)), "net salary: %s", net)
}

func TestCalculateZeroInputs(t *testing.T) {
	p := DefaultPolicy()
	monthly := decimal.NewFromInt(30000)

	d := Calculate(monthly, 0, 0, 0, p)

	assert.True(t, d.Total.IsZero())
	assert.True(t, NetSalary(monthly, d).Equal(monthly))
}

func TestCalculateNetPlusTotalEqualsMonthly(t *testing.T) {
	p := DefaultPolicy()
	monthly := decimal.NewFromInt(45000)

	for offDays := 0; offDays <= 10; offDays++ {
		d := Calculate(monthly, offDays, offDays, float64(offDays)/2, p)
		sum := NetSalary(monthly, d).Add(d.Total)
		assert.True(t, sum.Equal(monthly), "offDays=%d: net+total=%s", offDays, sum)
	}
}

func TestCalculateClampsAtMonthly(t *testing.T) {
	p := DefaultPolicy()
	monthly := decimal.NewFromInt(30000)

	// 40 off days would deduct more than the salary.
	d := Calculate(monthly, 40, 0, 0, p)

	assert.True(t, d.Total.Equal(monthly), "total: %s", d.Total)
	assert.True(t, NetSalary(monthly, d).IsZero())
}

func TestIsLate(t *testing.T) {
	p := DefaultPolicy()

	assert.False(t, IsLate(at(10, 14), p))
	assert.True(t, IsLate(at(10, 15), p))
	assert.True(t, IsLate(at(11, 0), p))
}

func TestLateMinutes(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 0, LateMinutes(at(9, 0), p))
	assert.Equal(t, 0, LateMinutes(at(10, 15), p))
	assert.Equal(t, 45, LateMinutes(at(11, 0), p))
}

func TestEarlyLeaveHours(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 0.0, EarlyLeaveHours(at(18, 15), p))
	assert.Equal(t, 0.0, EarlyLeaveHours(at(19, 0), p))
	assert.Equal(t, 2.0, EarlyLeaveHours(at(16, 15), p))
	assert.Equal(t, 0.5, EarlyLeaveHours(at(17, 45), p))
}

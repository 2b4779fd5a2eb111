package settings

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/salarymonth"
)

// PortalSettings is the singleton configuration record. Every time-window
// computation reads it; when unset, SalaryStartDay falls back to day 6.
type PortalSettings struct {
	Currency       string
	LogoURL        *string
	LoginLogoURL   *string
	SalaryStartDay int
	UpdatedAt      time.Time
}

// Defaults returns the settings used when no record has been stored yet.
func Defaults() PortalSettings {
	return PortalSettings{
		Currency:       "INR",
		SalaryStartDay: salarymonth.DefaultStartDay,
	}
}

// StartDay resolves the salary start day, falling back to the default for
// out-of-range values.
func (s PortalSettings) StartDay() int {
	if s.SalaryStartDay < salarymonth.MinStartDay || s.SalaryStartDay > salarymonth.MaxStartDay {
		return salarymonth.DefaultStartDay
	}
	return s.SalaryStartDay
}

// CurrencySymbol maps the configured currency code to its display symbol.
func (s PortalSettings) CurrencySymbol() string {
	switch s.Currency {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "PKR":
		return "Rs"
	case "AED":
		return "AED"
	default:
		return "₹"
	}
}

package settings

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/salarymonth"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	Currency       *string `json:"currency"`
	LogoURL        *string `json:"logo_url"`
	LoginLogoURL   *string `json:"login_logo_url"`
	SalaryStartDay *int    `json:"salary_start_day"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Currency != nil && validator.IsEmpty(*r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must not be empty",
		})
	}

	if r.SalaryStartDay != nil &&
		(*r.SalaryStartDay < salarymonth.MinStartDay || *r.SalaryStartDay > salarymonth.MaxStartDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_start_day",
			Message: "salary_start_day must be between 1 and 28",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	Currency       string  `json:"currency"`
	CurrencySymbol string  `json:"currency_symbol"`
	LogoURL        *string `json:"logo_url,omitempty"`
	LoginLogoURL   *string `json:"login_logo_url,omitempty"`
	SalaryStartDay int     `json:"salary_start_day"`
}

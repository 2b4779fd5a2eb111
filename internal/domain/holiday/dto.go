package holiday

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type AddHolidayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

type SeedSundaysResponse struct {
	Year    int `json:"year"`
	Sundays int `json:"sundays"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

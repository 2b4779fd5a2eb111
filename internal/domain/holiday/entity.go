package holiday

import "time"

// Holiday is keyed by its calendar date. Its presence excludes the date from
// unmarked-as-absent classification for every employee.
type Holiday struct {
	Date      string // YYYY-MM-DD
	Reason    *string
	CreatedAt time.Time
}

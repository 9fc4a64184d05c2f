package booking

import (
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/validators"
)

type Slot struct {
	Date  string
	Start string
	End   string
}

func NewSlot(date, start, end string) (Slot, error) {
	if !validators.IsDate(date) || !validators.IsClock(start) || !validators.IsClock(end) {
		return Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	// zero-padded HH:MM compares correctly as a string
	if end <= start {
		return Slot{}, httperr.ErrBusiness("invalid_time_range")
	}
	return Slot{Date: date, Start: start, End: end}, nil
}

func (s Slot) Overlaps(o Slot) bool {
	return s.Date == o.Date && s.Start < o.End && o.Start < s.End
}

func (s Slot) Hours() float64 {
	start, _ := time.Parse("15:04", s.Start)
	end, _ := time.Parse("15:04", s.End)
	return end.Sub(start).Hours()
}

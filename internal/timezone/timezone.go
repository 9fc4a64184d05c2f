package timezone

import "time"

const DefaultTimezone = "Asia/Kathmandu"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DateAfter formats the calendar date `days` days after now, in now's location.
func DateAfter(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format(DateLayout)
}

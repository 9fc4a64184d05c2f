package validators

import "time"

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsClock accepts zero-padded 24h times such as "09:30".
func IsClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

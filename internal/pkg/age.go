package pkg

import "time"

// AgeAt computes full years between birth and now: calendar-year difference,
// minus one when the birthday has not yet occurred this year.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

package services

import "time"

// MinEligibleAge is the registration gate; the service targets residents 65+.
const MinEligibleAge = 65

const birthDateLayout = "2006-01-02"

// ParseBirthDate parses a YYYY-MM-DD birth date.
func ParseBirthDate(s string) (time.Time, error) {
	return time.Parse(birthDateLayout, s)
}

// CalculateAge returns full years between birth and at, calendar-accurate:
// the year difference is reduced by one until the birthday has passed.
func CalculateAge(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// Age-group buckets. Used for rationale copy only, never for filtering.
const (
	AgeGroupSuper   = "초고령" // 85+
	AgeGroupElderly = "고령"  // 75..84
	AgeGroupPre     = "준고령" // 65..74
	AgeGroupGeneral = "일반"  // below the gate; unreachable for registered users
)

// AgeGroup buckets an age into the coarse group used in rationale text.
func AgeGroup(age int) string {
	switch {
	case age >= 85:
		return AgeGroupSuper
	case age >= 75:
		return AgeGroupElderly
	case age >= MinEligibleAge:
		return AgeGroupPre
	}
	return AgeGroupGeneral
}

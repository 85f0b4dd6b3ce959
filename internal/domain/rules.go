package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MinDemeritPoints and MaxDemeritPoints bound a single offense entry.
	MinDemeritPoints = 1
	MaxDemeritPoints = 6

	// DemeritWindowDays is the look-back window for the suspension total.
	DemeritWindowDays = 730

	provisionalAge       = 21
	provisionalThreshold = 6
	fullThreshold        = 12
)

var (
	personIDPattern = regexp.MustCompile(`^[2-9][0-9].{1,5}[^a-zA-Z0-9]{2,}.{0,2}[A-Z]{2}$`)
	datePattern     = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// ValidPersonID reports whether id has the registry's structural shape.
func ValidPersonID(id string) bool {
	return personIDPattern.MatchString(id)
}

// ValidAddress reports whether address has five pipe-separated fields with
// RequiredState in the fourth one.
func ValidAddress(address string) bool {
	parts := splitAddress(address)
	return len(parts) == 5 && parts[3] == RequiredState
}

// ValidDate only checks the DD-MM-YYYY shape; "99-99-9999" passes.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// Validate runs the id, address and birthdate checks in that order.
func (p Person) Validate() bool {
	return ValidPersonID(p.ID) && ValidAddress(p.Address) && ValidDate(p.Birthdate)
}

// ParseDate parses a DD-MM-YYYY string as midnight in loc. Out-of-range
// days and months roll over, so "31-02-2024" is 2 March 2024 and "00-01-2024"
// is 31 December 2023.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if !ValidDate(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// Age returns whole years between birthdate and now. A birthday counts as
// passed once now's day-of-year reaches the birth day-of-year, which is off
// by one day around 29 February in leap years.
func Age(birthdate string, now time.Time) (int, error) {
	born, err := ParseDate(birthdate, now.Location())
	if err != nil {
		return 0, err
	}
	age := now.Year() - born.Year()
	if now.YearDay() < born.YearDay() {
		age--
	}
	return age, nil
}

// ExceedsThreshold reports whether total points within the window suspend a
// driver of the given age.
func ExceedsThreshold(age, total int) bool {
	if age < provisionalAge {
		return total > provisionalThreshold
	}
	return total > fullThreshold
}

// WithinWindow reports whether an offense on date counts towards the total
// at now. Offenses dated in the future count.
func WithinWindow(date, now time.Time) bool {
	days := int64(now.Sub(date) / (24 * time.Hour))
	return days <= DemeritWindowDays
}

// splitAddress drops trailing empty fields, so "a|b|c|Victoria|" has four.
func splitAddress(address string) []string {
	parts := strings.Split(address, "|")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// IDStartsWithEven reports whether the numeric value of the first character
// of id is even. Letters count as 10 through 35, so "a" is even and "b" is
// odd. Any other leading character is treated as odd.
func IDStartsWithEven(id string) bool {
	if id == "" {
		return false
	}
	return numericValue(id[0])%2 == 0
}

func numericValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

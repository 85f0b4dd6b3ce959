package domain

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func TestValidPersonID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"56s_d%&fAB", true},
		{"23ab!!AB", true},
		{"29abcde##xyAB", true},
		{"16s_d%&fAB", false},   // first digit must be 2-9
		{"5as_d%&fAB", false},   // second char must be a digit
		{"56sd%fAB", false},     // only one special character
		{"56s_d%&fAb", false},   // must end with two uppercase letters
		{"56abcdef!!AB", false}, // more than five characters before specials
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidPersonID(tc.id); got != tc.want {
			t.Fatalf("ValidPersonID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestValidAddress(t *testing.T) {
	cases := []struct {
		addr string
		want bool
	}{
		{"32|Highland Street|Melbourne|Victoria|Australia", true},
		{"32|Highland Street|Melbourne|New South Wales|Australia", false},
		{"32|Highland Street|Melbourne|Victoria", false},
		{"32|Highland Street|Melbourne|Victoria|Australia|3000", false},
		{"32|Highland Street|Melbourne|Victoria|", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidAddress(tc.addr); got != tc.want {
			t.Fatalf("ValidAddress(%q) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}

func TestValidDate_PatternOnly(t *testing.T) {
	if !ValidDate("15-11-1990") {
		t.Fatalf("expected well-formed date to pass")
	}
	if !ValidDate("99-99-9999") {
		t.Fatalf("expected pattern-only check to accept 99-99-9999")
	}
	for _, s := range []string{"1990-11-15", "15/11/1990", "5-11-1990", "15-11-90", " 15-11-1990"} {
		if ValidDate(s) {
			t.Fatalf("expected %q to fail", s)
		}
	}
}

func TestParseDate_RollsOverOutOfRangeFields(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"31-02-2024", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{"00-01-2024", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"01-13-2024", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in, time.UTC)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseDate("2024-03-03", time.UTC); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("03-03-2024", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Day() != 3 || got.Month() != time.March || got.Year() != 2024 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestAge_DayOfYear(t *testing.T) {
	// testNow is day 289 of 2026.
	cases := []struct {
		birthdate string
		want      int
	}{
		{"16-10-2001", 25}, // same day of year
		{"15-10-2001", 25}, // earlier day of year
		{"17-10-2001", 24}, // today's day-of-year is one behind
		{"01-01-2026", 0},
	}
	for _, tc := range cases {
		got, err := Age(tc.birthdate, testNow)
		if err != nil {
			t.Fatalf("Age(%q): %v", tc.birthdate, err)
		}
		if got != tc.want {
			t.Fatalf("Age(%q) = %d, want %d", tc.birthdate, got, tc.want)
		}
	}
}

func TestAge_LeapYearApproximation(t *testing.T) {
	// 16 Oct 2000 is day 290 of a leap year, one past testNow's day 289,
	// so the birthday does not count yet.
	got, err := Age("16-10-2000", testNow)
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	if got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	// 1 Mar 2028 is day 61 of a leap year; 2 Mar 2001 is also day 61.
	leapNow := time.Date(2028, time.March, 1, 0, 0, 0, 0, time.UTC)
	got, err = Age("02-03-2001", leapNow)
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	if got != 27 {
		t.Fatalf("expected 27, got %d", got)
	}
}

func TestAge_RolledOverBirthdate(t *testing.T) {
	// 31-02-2000 is 2 March 2000, day 62, well before testNow's day 289.
	got, err := Age("31-02-2000", testNow)
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	if got != 26 {
		t.Fatalf("expected 26, got %d", got)
	}
}

func TestAge_ParseFailure(t *testing.T) {
	if _, err := Age("1990-01-01", testNow); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestExceedsThreshold(t *testing.T) {
	cases := []struct {
		age, total int
		want       bool
	}{
		{19, 6, false},
		{19, 7, true},
		{20, 12, true},
		{21, 7, false},
		{23, 12, false},
		{23, 13, true},
	}
	for _, tc := range cases {
		if got := ExceedsThreshold(tc.age, tc.total); got != tc.want {
			t.Fatalf("ExceedsThreshold(%d, %d) = %v, want %v", tc.age, tc.total, got, tc.want)
		}
	}
}

func TestWithinWindow(t *testing.T) {
	if !WithinWindow(testNow.AddDate(0, 0, -730), testNow) {
		t.Fatalf("expected day 730 to count")
	}
	if WithinWindow(testNow.AddDate(0, 0, -731), testNow) {
		t.Fatalf("expected day 731 to be excluded")
	}
	if !WithinWindow(testNow.AddDate(0, 0, 5), testNow) {
		t.Fatalf("expected future offense to count")
	}
}

func TestIDStartsWithEven(t *testing.T) {
	cases := map[string]bool{
		"23ab!!AB": true,
		"56ab!!AB": false,
		"8":        true,
		"a1":       true,
		"b1":       false,
		"#1":       false,
		"":         false,
	}
	for id, want := range cases {
		if got := IDStartsWithEven(id); got != want {
			t.Fatalf("IDStartsWithEven(%q) = %v, want %v", id, got, want)
		}
	}
}

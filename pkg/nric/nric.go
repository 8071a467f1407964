// Package nric decodes Malaysian national identification (NRIC) numbers.
package nric

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Gender derived from the last NRIC digit.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// DerivedIdentity holds the attributes decoded from an NRIC.
type DerivedIdentity struct {
	Gender      Gender `json:"gender"`
	DateOfBirth string `json:"dobISO"`
}

// Digits strips every non-digit character from v.
func Digits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Derive decodes gender and date of birth from an identification value.
// Any input that is not 12 digits after stripping yields Unknown with an
// empty date. The century is chosen by comparing the year-of-century to the
// last two digits of the current year: strictly greater means 1900s,
// otherwise 2000s. No calendar validity check is performed here.
func Derive(value string, now time.Time) DerivedIdentity {
	d := Digits(value)
	if len(d) != 12 {
		return DerivedIdentity{Gender: GenderUnknown}
	}

	yy, mm, dd := d[0:2], d[2:4], d[4:6]
	century := "20"
	if atoi2(yy) > now.Year()%100 {
		century = "19"
	}

	gender := GenderFemale
	if int(d[11]-'0')%2 == 1 {
		gender = GenderMale
	}

	return DerivedIdentity{
		Gender:      gender,
		DateOfBirth: fmt.Sprintf("%s%s-%s-%s", century, yy, mm, dd),
	}
}

// IsValid reports whether value is a well-formed NRIC: 12 digits with a real
// calendar date in the first six, leap years included. The century used for
// the leap check follows the same heuristic as Derive.
func IsValid(value string, now time.Time) bool {
	d := Digits(value)
	if len(d) != 12 {
		return false
	}

	month := atoi2(d[2:4])
	day := atoi2(d[4:6])
	if month < 1 || month > 12 {
		return false
	}

	year := 2000 + atoi2(d[0:2])
	if atoi2(d[0:2]) > now.Year()%100 {
		year -= 100
	}
	return day >= 1 && day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func atoi2(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

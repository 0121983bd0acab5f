package dialogue

import (
	"strconv"
	"strings"
	"time"
)

// minimumIDAge is the youngest a citizen may be to book an ID appointment.
const minimumIDAge = 16

// ValidDate reports whether s is a real calendar date written DD/MM/YYYY.
// Each component must round-trip through calendar construction unchanged, so
// 31/02/2020 and 00/01/2020 are rejected.
func ValidDate(s string) bool {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return false
	}

	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return dt.Year() == year && int(dt.Month()) == month && dt.Day() == day
}

// parseAge validates a raw age answer: it must be an integer no younger than
// the appointment minimum. The returned message, when non-empty, is the retry
// text to show the user.
func parseAge(raw string) (int, string) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, "Please enter a number (age)."
	}
	if age < minimumIDAge {
		return 0, "You must be at least 16 years old. Enter your age again."
	}
	return age, ""
}

// normalizeSex maps the recognized male/female tokens, including the Amharic
// ones, onto the canonical values. Unrecognized input is kept verbatim.
func normalizeSex(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "boy", "m", "ወንድ":
		return "Male"
	case "female", "girl", "f", "ሴት":
		return "Female"
	default:
		return value
	}
}

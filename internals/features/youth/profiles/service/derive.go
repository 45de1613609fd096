package service

import (
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/cases"

	"skyouth_backend/internals/features/youth/profiles/model"
)

// Date layouts accepted for the birth date, tried in order. Slashed dates are month first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02-01-2006",
}

// ParseDate parses a birth date and returns it as a calendar date (UTC midnight).
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// AgeOn returns the completed years between dob and the calendar date today.
func AgeOn(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// AgeGroupFor maps an age onto the youth office brackets; outside 15-30 it is "".
func AgeGroupFor(age int) string {
	switch {
	case age >= 15 && age <= 17:
		return model.AgeGroupChildYouth
	case age >= 18 && age <= 24:
		return model.AgeGroupCoreYouth
	case age >= 25 && age <= 30:
		return model.AgeGroupYoungAdult
	default:
		return ""
	}
}

// ParseBool understands the answers registration forms actually collect.
func ParseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "oo", "on", "checked":
		return true, true
	case "no", "n", "false", "0", "hindi", "off", "none":
		return false, true
	default:
		return false, false
	}
}

// SplitList splits "a, b; c" style answers. "None" and "N/A" mean an empty list.
func SplitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' || r == '\n' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch strings.ToLower(p) {
		case "", "none", "n/a", "na":
			continue
		}
		out = append(out, p)
	}
	return out
}

// ComposeFullName joins the name parts that are present.
func ComposeFullName(first, middle, last, suffix string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{first, middle, last, suffix} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// NormalizeMobile keeps digits only and rewrites the +63 prefix to the local 0 prefix.
func NormalizeMobile(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "63") {
		return "0" + digits[2:]
	}
	return digits
}

// IdentityHash fingerprints (full name, mobile, birth date) for the duplicate guard.
// Names are case-folded with whitespace collapsed.
func IdentityHash(fullName, mobile string, dob time.Time) string {
	name := strings.Join(strings.Fields(cases.Fold().String(fullName)), " ")
	key := name + "\x00" + NormalizeMobile(mobile) + "\x00" + dob.Format("2006-01-02")
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

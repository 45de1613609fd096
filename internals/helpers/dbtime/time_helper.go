package dbtime

import (
	"log"
	"strings"
	"sync"
	"time"
)

const DefaultTimezone = "Asia/Manila"

var (
	locMu    sync.RWMutex
	location *time.Location
)

// SetTimezone dipanggil sekali saat startup (APP_TIMEZONE). Nama yang tidak
// dikenal jatuh ke Asia/Manila, lalu UTC.
func SetTimezone(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] timezone %q tidak dikenal: %v", name, err)
		if loc, err = time.LoadLocation(DefaultTimezone); err != nil {
			loc = time.UTC
		}
	}

	locMu.Lock()
	location = loc
	locMu.Unlock()
	return loc
}

// Location returns the office timezone, loading the default on first use.
func Location() *time.Location {
	locMu.RLock()
	loc := location
	locMu.RUnlock()
	if loc != nil {
		return loc
	}
	return SetTimezone(DefaultTimezone)
}

// ToLocal mengonversi waktu (biasanya dari DB = UTC) ke timezone kantor.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}

// DateOf strips the clock, keeping the calendar date as seen in the office timezone.
func DateOf(t time.Time) time.Time {
	l := ToLocal(t)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.UTC)
}

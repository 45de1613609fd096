package service

import (
	"fmt"
	"math/rand/v2"

	"skyouth_backend/internals/helpers/dbtime"
)

// maxTrackingAttempts bounds how often a colliding tracking id is redrawn.
const maxTrackingAttempts = 5

// TrackingID formats SK-{year}-{NNNN} with n taken modulo 10000.
func TrackingID(year, n int) string {
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("SK-%d-%04d", year, n%10000)
}

func (s *Service) nextTrackingID() string {
	year := dbtime.ToLocal(s.now()).Year()
	return TrackingID(year, s.randN(10000))
}

func defaultRandN(n int) int { return rand.IntN(n) }

package service

import (
	"testing"
	"time"

	"skyouth_backend/internals/features/youth/profiles/model"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestAgeOn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dob, on time.Time
		want    int
	}{
		{date(2000, 6, 15), date(2024, 6, 14), 23},
		{date(2000, 6, 15), date(2024, 6, 15), 24},
		{date(2000, 6, 15), date(2024, 7, 1), 24},
		{date(2004, 2, 29), date(2023, 2, 28), 18},
		{date(2004, 2, 29), date(2023, 3, 1), 19},
		{date(2030, 1, 1), date(2024, 1, 1), 0},
	}
	for _, tt := range tests {
		if got := AgeOn(tt.dob, tt.on); got != tt.want {
			t.Errorf("AgeOn(%s, %s) = %d, want %d", tt.dob.Format("2006-01-02"), tt.on.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestAgeGroupFor(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		14: "",
		15: model.AgeGroupChildYouth,
		17: model.AgeGroupChildYouth,
		18: model.AgeGroupCoreYouth,
		24: model.AgeGroupCoreYouth,
		25: model.AgeGroupYoungAdult,
		30: model.AgeGroupYoungAdult,
		31: "",
	}
	for age, want := range tests {
		if got := AgeGroupFor(age); got != want {
			t.Errorf("AgeGroupFor(%d) = %q, want %q", age, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := date(2000, 6, 15)
	for _, raw := range []string{"2000-06-15", "06/15/2000", "6/15/2000", "June 15, 2000", "Jun 15, 2000", "2000-06-15T00:00:00Z", " 2000-06-15 "} {
		got, ok := ParseDate(raw)
		if !ok || !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, %v", raw, got, ok)
		}
	}
	for _, raw := range []string{"", "yesterday", "15/15/2000"} {
		if _, ok := ParseDate(raw); ok {
			t.Errorf("ParseDate(%q) should fail", raw)
		}
	}
}

func TestIdentityHash_Normalizes(t *testing.T) {
	t.Parallel()

	dob := date(2000, 6, 15)
	a := IdentityHash("Juan Dela Cruz", "+63 917 123 4567", dob)
	b := IdentityHash("  juan   DELA cruz", "0917-123-4567", dob)
	if a != b {
		t.Fatal("same person should hash equally")
	}
	if a == IdentityHash("Juan Dela Cruz", "09171234567", date(2000, 6, 16)) {
		t.Fatal("different birth dates must differ")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d", len(a))
	}
}

func TestParseBoolAndSplitList(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]bool{"Yes": true, "oo": true, "TRUE": true, "No": false, "hindi": false, "0": false} {
		got, ok := ParseBool(raw)
		if !ok || got != want {
			t.Errorf("ParseBool(%q) = %v, %v", raw, got, ok)
		}
	}
	if _, ok := ParseBool("maybe"); ok {
		t.Error("ParseBool(maybe) should be unknown")
	}

	got := SplitList("Dancing, Coding; N/A\nSinging")
	if len(got) != 3 || got[2] != "Singing" {
		t.Fatalf("SplitList = %v", got)
	}
}

func TestTrackingID(t *testing.T) {
	t.Parallel()

	if got := TrackingID(2024, 7); got != "SK-2024-0007" {
		t.Fatalf("TrackingID = %q", got)
	}
	if got := TrackingID(2025, 12345); got != "SK-2025-2345" {
		t.Fatalf("TrackingID = %q", got)
	}
}

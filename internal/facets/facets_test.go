package facets

import (
	"reflect"
	"testing"
	"time"
)

func TestDemandLevel(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		jobCount int
		want     string
	}{
		{1500, DemandHigh},
		{1400, DemandHigh},
		{1360, DemandMedium},
		{1350, DemandMedium},
		{1349, DemandLow},
		{1000, DemandLow},
		{0, DemandLow},
	}
	for _, tc := range cases {
		if got := cfg.DemandLevel(tc.jobCount); got != tc.want {
			t.Errorf("DemandLevel(%d) = %q, want %q", tc.jobCount, got, tc.want)
		}
	}
}

func TestAgeCategory(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		year int
		want string
	}{
		{2020, AgeNew},
		{2017, AgeNew},
		{2016, AgeEstablished},
		{1997, AgeEstablished},
		{1996, AgeVeteran},
		{1950, AgeVeteran},
	}
	for _, tc := range cases {
		if got := AgeCategory(tc.year, now); got != tc.want {
			t.Errorf("AgeCategory(%d) = %q, want %q", tc.year, got, tc.want)
		}
	}
}

func TestProgramBand(t *testing.T) {
	if got := ProgramBand(9); got != DemandHigh {
		t.Errorf("ProgramBand(9) = %q, want High", got)
	}
	if got := ProgramBand(5); got != DemandMedium {
		t.Errorf("ProgramBand(5) = %q, want Medium", got)
	}
	if got := ProgramBand(4); got != DemandLow {
		t.Errorf("ProgramBand(4) = %q, want Low", got)
	}
}

func TestDistinctValues(t *testing.T) {
	type rec struct{ Location string }
	records := []rec{
		{"Phnom Penh"},
		{"Siem Reap"},
		{"Phnom Penh"},
		{""},
		{"Battambang"},
	}
	got := DistinctValues(records, func(r rec) string { return r.Location })
	want := []string{"All", "Phnom Penh", "Siem Reap", "Battambang"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues() = %v, want %v", got, want)
	}
}

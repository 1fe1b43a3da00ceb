package usecase

import (
	"context"
	"testing"
	"time"

	"clmi/internal/domain/university"
	"clmi/internal/facets"
)

func testUniversities() []university.Record {
	return []university.Record{
		{ID: 1, Name: "Royal University of Phnom Penh", Location: "Phnom Penh", Type: university.TypePublic, EstablishedYear: 1960, ProgramCount: 12},
		{ID: 2, Name: "Build Bright University", Location: "Siem Reap", Type: university.TypePrivate, EstablishedYear: 2000, ProgramCount: 7},
		{ID: 3, Name: "American University of Phnom Penh", Location: "Phnom Penh", Type: university.TypePrivate, EstablishedYear: 2018, ProgramCount: 4},
	}
}

func TestListUniversitiesDefaultSortAndBadges(t *testing.T) {
	repo := &mockRepo{universities: testUniversities()}
	uc := NewUniversityListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)
	uc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	res, err := uc.ListUniversities(context.Background(), UniversityListParams{})
	if err != nil {
		t.Fatalf("ListUniversities: %v", err)
	}
	// Default sort is program_count descending.
	if res.Items[0].ID != 1 || res.Items[2].ID != 3 {
		t.Fatalf("order = %+v", res.Items)
	}
	if res.Items[0].AgeCategory != facets.AgeVeteran {
		t.Errorf("1960 should band Veteran, got %q", res.Items[0].AgeCategory)
	}
	if res.Items[2].AgeCategory != facets.AgeNew {
		t.Errorf("2018 should band New, got %q", res.Items[2].AgeCategory)
	}
	if res.Items[0].ProgramBand != facets.DemandHigh || res.Items[2].ProgramBand != facets.DemandLow {
		t.Errorf("program bands = %+v", res.Items)
	}
}

func TestListUniversitiesFilterAndFacets(t *testing.T) {
	repo := &mockRepo{universities: testUniversities()}
	uc := NewUniversityListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)

	res, err := uc.ListUniversities(context.Background(), UniversityListParams{Type: university.TypePrivate, Location: "Phnom Penh"})
	if err != nil {
		t.Fatalf("ListUniversities: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].ID != 3 {
		t.Errorf("items = %+v", res.Items)
	}
	// Facet options always come from the full collection.
	if len(res.Facets.Locations) != 3 { // All + Phnom Penh + Siem Reap
		t.Errorf("locations facet = %v", res.Facets.Locations)
	}
}

package usecase

import (
	"context"
	"log"
	"time"

	"clmi/internal/domain/university"
	"clmi/internal/facets"
	"clmi/internal/listing"
	"clmi/internal/marketdata"
)

type UniversityListParams struct {
	Search   string
	Location string
	Type     string
	SortBy   string
	Page     int
	PerPage  int
}

// UniversityListItem decorates a university with its age badge.
type UniversityListItem struct {
	university.Record
	Age         int    `json:"age"`
	AgeCategory string `json:"age_category"`
	ProgramBand string `json:"program_band"`
}

type UniversityFacets struct {
	Locations []string `json:"locations"`
	Types     []string `json:"types"`
}

type UniversityListResult struct {
	Items  []UniversityListItem
	Meta   listing.PageState
	Facets UniversityFacets
}

type UniversityListUsecase interface {
	ListUniversities(ctx context.Context, params UniversityListParams) (UniversityListResult, error)
}

type UniversityList struct {
	repo      marketdata.Repository
	snapshots *Snapshots
	mode      Mode
	logger    *log.Logger

	now func() time.Time
}

func NewUniversityListUsecase(repo marketdata.Repository, snapshots *Snapshots, mode Mode, logger *log.Logger) *UniversityList {
	return &UniversityList{repo: repo, snapshots: snapshots, mode: mode, logger: logger, now: time.Now}
}

func (u *UniversityList) ListUniversities(ctx context.Context, params UniversityListParams) (UniversityListResult, error) {
	page, perPage, err := normalizePaging(params.Page, params.PerPage)
	if err != nil {
		return UniversityListResult{}, err
	}

	if u.mode == ModeDelegated {
		items, meta, err := u.repo.FetchUniversities(ctx, marketdata.Query{
			Search:   params.Search,
			Location: params.Location,
			Type:     params.Type,
			Page:     page,
			PerPage:  perPage,
		})
		if err != nil {
			return UniversityListResult{}, err
		}
		state := listing.PageState{Page: page, PerPage: perPage, Total: len(items), Pages: 1}
		if meta != nil {
			state = listing.PageState{Page: meta.Page, PerPage: meta.PerPage, Total: meta.Total, Pages: meta.Pages}
		}
		return UniversityListResult{Items: u.decorate(items), Meta: state, Facets: universityFacets(items)}, nil
	}

	snapshot, err := u.snapshots.Universities(ctx)
	if err != nil {
		return UniversityListResult{}, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = listing.SortProgramCount
	}

	items, state := listing.List(snapshot, listing.UniversitySchema(), listing.FilterSpec{
		listing.KeySearch:   params.Search,
		listing.KeyLocation: params.Location,
		listing.KeyType:     params.Type,
	}, sortBy, page, perPage)

	return UniversityListResult{Items: u.decorate(items), Meta: state, Facets: universityFacets(snapshot)}, nil
}

func (u *UniversityList) decorate(records []university.Record) []UniversityListItem {
	now := u.now()
	out := make([]UniversityListItem, 0, len(records))
	for _, r := range records {
		out = append(out, UniversityListItem{
			Record:      r,
			Age:         now.Year() - r.EstablishedYear,
			AgeCategory: facets.AgeCategory(r.EstablishedYear, now),
			ProgramBand: facets.ProgramBand(r.ProgramCount),
		})
	}
	return out
}

func universityFacets(records []university.Record) UniversityFacets {
	return UniversityFacets{
		Locations: facets.DistinctValues(records, func(r university.Record) string { return r.Location }),
		Types:     facets.DistinctValues(records, func(r university.Record) string { return r.Type }),
	}
}

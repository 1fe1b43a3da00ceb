package usecase

import (
	"context"
	"log"

	"clmi/internal/domain/job"
	"clmi/internal/facets"
	"clmi/internal/listing"
	"clmi/internal/marketdata"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type JobListParams struct {
	Search          string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	Industry        string
	Skill           string
	SortBy          string
	Page            int
	PerPage         int
}

// JobFacets are the distinct filter-option sets derived from the full
// collection, used to populate the filter dropdowns.
type JobFacets struct {
	Locations        []string `json:"locations"`
	Industries       []string `json:"industries"`
	EmploymentTypes  []string `json:"employment_types"`
	ExperienceLevels []string `json:"experience_levels"`
}

type JobListResult struct {
	Items  []job.Record
	Meta   listing.PageState
	Facets JobFacets
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) (JobListResult, error)
	GetJob(ctx context.Context, id string) (job.Record, error)
	Stats(ctx context.Context) (job.Stats, error)
}

type JobList struct {
	repo      marketdata.Repository
	snapshots *Snapshots
	mode      Mode
	logger    *log.Logger
}

func NewJobListUsecase(repo marketdata.Repository, snapshots *Snapshots, mode Mode, logger *log.Logger) *JobList {
	return &JobList{repo: repo, snapshots: snapshots, mode: mode, logger: logger}
}

// ListJobs derives one page of the job listing. Out-of-range pages clamp
// instead of erroring; an empty page is a valid result.
func (u *JobList) ListJobs(ctx context.Context, params JobListParams) (JobListResult, error) {
	page, perPage, err := normalizePaging(params.Page, params.PerPage)
	if err != nil {
		return JobListResult{}, err
	}
	params.Page = page
	params.PerPage = perPage

	if u.mode == ModeDelegated {
		return u.listDelegated(ctx, params)
	}
	return u.listClient(ctx, params)
}

func (u *JobList) listClient(ctx context.Context, params JobListParams) (JobListResult, error) {
	snapshot, err := u.snapshots.Jobs(ctx)
	if err != nil {
		return JobListResult{}, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = listing.SortRecent
	}

	items, state := listing.List(snapshot, listing.JobSchema(), listing.FilterSpec{
		listing.KeySearch:          params.Search,
		listing.KeyLocation:        params.Location,
		listing.KeyEmploymentType:  params.EmploymentType,
		listing.KeyExperienceLevel: params.ExperienceLevel,
		listing.KeyIndustry:        params.Industry,
		listing.KeySkill:           params.Skill,
	}, sortBy, params.Page, params.PerPage)

	return JobListResult{Items: items, Meta: state, Facets: jobFacets(snapshot)}, nil
}

func (u *JobList) listDelegated(ctx context.Context, params JobListParams) (JobListResult, error) {
	items, meta, err := u.repo.FetchJobs(ctx, marketdata.Query{
		Search:          params.Search,
		Location:        params.Location,
		EmploymentType:  params.EmploymentType,
		ExperienceLevel: params.ExperienceLevel,
		Industry:        params.Industry,
		Skill:           params.Skill,
		Page:            params.Page,
		PerPage:         params.PerPage,
	})
	if err != nil {
		return JobListResult{}, err
	}

	// The returned page and meta counts are trusted verbatim; no local
	// filtering happens in this mode.
	state := listing.PageState{Page: params.Page, PerPage: params.PerPage, Total: len(items), Pages: 1}
	if meta != nil {
		state = listing.PageState{Page: meta.Page, PerPage: meta.PerPage, Total: meta.Total, Pages: meta.Pages}
	}

	return JobListResult{Items: items, Meta: state, Facets: jobFacets(items)}, nil
}

func (u *JobList) GetJob(ctx context.Context, id string) (job.Record, error) {
	if id == "" {
		return job.Record{}, ErrInvalidInput
	}
	return u.repo.FetchJob(ctx, id)
}

func (u *JobList) Stats(ctx context.Context) (job.Stats, error) {
	return u.snapshots.JobStats(ctx)
}

func jobFacets(records []job.Record) JobFacets {
	return JobFacets{
		Locations:        facets.DistinctValues(records, func(r job.Record) string { return r.Location }),
		Industries:       facets.DistinctValues(records, func(r job.Record) string { return r.Industry }),
		EmploymentTypes:  facets.DistinctValues(records, func(r job.Record) string { return r.EmploymentType }),
		ExperienceLevels: facets.DistinctValues(records, func(r job.Record) string { return r.ExperienceLevel }),
	}
}

// normalizePaging applies defaults and clamps. Only an oversized page
// size is rejected; out-of-range pages clamp per the listing contract.
func normalizePaging(page, perPage int) (int, int, error) {
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage < 0 || perPage > maxPerPage {
		return 0, 0, ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}
	return page, perPage, nil
}

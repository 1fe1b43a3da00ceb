package usecase

import (
	"context"
	"errors"
	"testing"

	"clmi/internal/domain/job"
	"clmi/internal/domain/skill"
	"clmi/internal/domain/university"
	"clmi/internal/marketdata"
)

type mockRepo struct {
	jobs       []job.Record
	jobsMeta   *marketdata.Meta
	lastQuery  marketdata.Query
	fetchCalls int
	err        error

	skills       []skill.Record
	universities []university.Record
	stats        job.Stats
}

func (m *mockRepo) FetchJobs(_ context.Context, q marketdata.Query) ([]job.Record, *marketdata.Meta, error) {
	m.lastQuery = q
	m.fetchCalls++
	return m.jobs, m.jobsMeta, m.err
}

func (m *mockRepo) FetchJob(_ context.Context, id string) (job.Record, error) {
	for _, r := range m.jobs {
		if r.ID == id {
			return r, nil
		}
	}
	return job.Record{}, marketdata.ErrNotFound
}

func (m *mockRepo) FetchJobStats(context.Context) (job.Stats, error) { return m.stats, m.err }

func (m *mockRepo) FetchSkills(_ context.Context, q marketdata.Query) ([]skill.Record, *marketdata.Meta, error) {
	m.lastQuery = q
	return m.skills, nil, m.err
}

func (m *mockRepo) FetchUniversities(_ context.Context, q marketdata.Query) ([]university.Record, *marketdata.Meta, error) {
	m.lastQuery = q
	return m.universities, nil, m.err
}

func testJobs() []job.Record {
	return []job.Record{
		{ID: "JOB1", Title: "Backend Engineer", Company: "Acme", Industry: "Technology", Location: "Phnom Penh", EmploymentType: job.EmploymentFullTime, PostedDate: "2025-11-02"},
		{ID: "JOB2", Title: "Farm Manager", Company: "Cambodia Rice Federation", Industry: "Agriculture", Location: "Kampong Speu", EmploymentType: job.EmploymentContract, PostedDate: "2025-12-09"},
		{ID: "JOB3", Title: "Frontend Engineer", Company: "Acme", Industry: "Technology", Location: "Phnom Penh", EmploymentType: job.EmploymentFullTime, PostedDate: "2025-12-01"},
	}
}

func TestListJobsClientModeFiltersLocally(t *testing.T) {
	repo := &mockRepo{jobs: testJobs()}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{Industry: "Technology"})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if res.Meta.Total != 2 {
		t.Fatalf("total = %d, want 2", res.Meta.Total)
	}
	// Default sort is recent: JOB3 (Dec 1) before JOB1 (Nov 2).
	if res.Items[0].ID != "JOB3" || res.Items[1].ID != "JOB1" {
		t.Errorf("items = %+v", res.Items)
	}
	// Facets come from the full snapshot, not the filtered subset.
	if len(res.Facets.Industries) != 3 { // All + Technology + Agriculture
		t.Errorf("industry facet = %v", res.Facets.Industries)
	}
	// The snapshot fetch must carry no filter parameters.
	if repo.lastQuery != (marketdata.Query{}) {
		t.Errorf("snapshot fetch forwarded filters: %+v", repo.lastQuery)
	}
}

func TestListJobsClientModeEmptyResultIsNotAnError(t *testing.T) {
	repo := &mockRepo{jobs: testJobs()}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{Location: "Nowhere"})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(res.Items) != 0 || res.Meta.Total != 0 {
		t.Errorf("result = %+v", res)
	}
	if res.Meta.Page != 1 {
		t.Errorf("page = %d, want clamped to 1", res.Meta.Page)
	}
}

func TestListJobsDelegatedModeForwardsParamsAndTrustsMeta(t *testing.T) {
	repo := &mockRepo{
		jobs:     testJobs()[:1],
		jobsMeta: &marketdata.Meta{Page: 3, PerPage: 10, Total: 120, Pages: 12},
	}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeDelegated, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{
		Search:   "engineer",
		Location: "Phnom Penh",
		Page:     3,
		PerPage:  10,
	})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}

	want := marketdata.Query{Search: "engineer", Location: "Phnom Penh", Page: 3, PerPage: 10}
	if repo.lastQuery != want {
		t.Errorf("forwarded query = %+v, want %+v", repo.lastQuery, want)
	}
	// Meta counts are trusted verbatim even though only one item came back.
	if res.Meta.Total != 120 || res.Meta.Pages != 12 || res.Meta.Page != 3 {
		t.Errorf("meta = %+v", res.Meta)
	}
	if len(res.Items) != 1 {
		t.Errorf("items must be passed through untouched, got %d", len(res.Items))
	}
}

func TestListJobsDelegatedModeSynthesizesMetaWhenAbsent(t *testing.T) {
	repo := &mockRepo{jobs: testJobs()}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeDelegated, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if res.Meta.Total != 3 || res.Meta.Pages != 1 || res.Meta.Page != 1 {
		t.Errorf("meta = %+v", res.Meta)
	}
}

func TestListJobsOversizedPageSizeRejected(t *testing.T) {
	repo := &mockRepo{jobs: testJobs()}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{PerPage: 500}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListJobsFetchErrorSurfacesOnce(t *testing.T) {
	repo := &mockRepo{err: marketdata.ErrUnreachable}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); !errors.Is(err, marketdata.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable to pass through, got %v", err)
	}
	if repo.fetchCalls != 1 {
		t.Errorf("fetch must not be retried, got %d calls", repo.fetchCalls)
	}
}

func TestGetJob(t *testing.T) {
	repo := &mockRepo{jobs: testJobs()}
	uc := NewJobListUsecase(repo, NewSnapshots(repo, nil, 0, nil), ModeClient, nil)

	rec, err := uc.GetJob(context.Background(), "JOB2")
	if err != nil || rec.Title != "Farm Manager" {
		t.Errorf("GetJob = %+v, %v", rec, err)
	}
	if _, err := uc.GetJob(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty id should be rejected, got %v", err)
	}
}

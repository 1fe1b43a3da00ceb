// Package marketdata is the client for the upstream labor-market API. It
// fetches raw record collections and exposes them unfiltered; all view
// derivation happens elsewhere.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clmi/internal/domain/job"
	"clmi/internal/domain/skill"
	"clmi/internal/domain/university"
)

// Query carries the filter/sort/page parameters forwarded upstream in
// server-delegated mode. Zero-valued fields are omitted from the request,
// never sent as empty strings.
type Query struct {
	Search          string
	Location        string
	EmploymentType  string
	ExperienceLevel string
	Industry        string
	Skill           string
	Type            string
	Page            int
	PerPage         int
}

func (q Query) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("search", q.Search)
	set("location", q.Location)
	set("employment_type", q.EmploymentType)
	set("experience_level", q.ExperienceLevel)
	set("industry", q.Industry)
	set("skill", q.Skill)
	set("type", q.Type)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}

// Meta is the upstream pagination block, present on paginated endpoints
// and absent on fetch-everything endpoints.
type Meta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *Meta           `json:"meta"`
	Error   string          `json:"error"`
}

// Repository is what the listing layer consumes; Client implements it
// over HTTP and tests substitute fixtures.
type Repository interface {
	FetchJobs(ctx context.Context, q Query) ([]job.Record, *Meta, error)
	FetchJob(ctx context.Context, id string) (job.Record, error)
	FetchJobStats(ctx context.Context) (job.Stats, error)
	FetchSkills(ctx context.Context, q Query) ([]skill.Record, *Meta, error)
	FetchUniversities(ctx context.Context, q Query) ([]university.Record, *Meta, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) FetchJobs(ctx context.Context, q Query) ([]job.Record, *Meta, error) {
	var records []job.Record
	meta, err := c.get(ctx, "/api/jobs", q.values(), &records)
	if err != nil {
		return nil, nil, err
	}
	return records, meta, nil
}

func (c *Client) FetchJob(ctx context.Context, id string) (job.Record, error) {
	var record job.Record
	if _, err := c.get(ctx, "/api/jobs/"+url.PathEscape(id), nil, &record); err != nil {
		return job.Record{}, err
	}
	return record, nil
}

func (c *Client) FetchJobStats(ctx context.Context) (job.Stats, error) {
	var stats job.Stats
	if _, err := c.get(ctx, "/api/jobs/stats", nil, &stats); err != nil {
		return job.Stats{}, err
	}
	return stats, nil
}

func (c *Client) FetchSkills(ctx context.Context, q Query) ([]skill.Record, *Meta, error) {
	var records []skill.Record
	meta, err := c.get(ctx, "/api/skills", q.values(), &records)
	if err != nil {
		return nil, nil, err
	}
	return records, meta, nil
}

func (c *Client) FetchUniversities(ctx context.Context, q Query) ([]university.Record, *Meta, error) {
	var records []university.Record
	meta, err := c.get(ctx, "/api/universities", q.values(), &records)
	if err != nil {
		return nil, nil, err
	}
	return records, meta, nil
}

// get performs one upstream call and decodes the {success,data,meta}
// envelope into out. The error is always one of the package sentinels,
// wrapped with request context.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (*Meta, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logf("[Upstream] Request failed | url=%s err=%v", u, err)
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		c.logf("[Upstream] Server error | url=%s status=%d", u, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logf("[Upstream] Malformed body | url=%s err=%v", u, err)
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if !env.Success {
		c.logf("[Upstream] Unsuccessful envelope | url=%s error=%q", u, env.Error)
		return nil, fmt.Errorf("%w: success=false", ErrMalformed)
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: missing data", ErrMalformed)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		c.logf("[Upstream] Malformed data | url=%s err=%v", u, err)
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return env.Meta, nil
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

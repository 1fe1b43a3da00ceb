package usecase

import (
	"context"
	"log"

	"clmi/internal/domain/skill"
	"clmi/internal/facets"
	"clmi/internal/listing"
	"clmi/internal/marketdata"
)

type SkillListParams struct {
	Search  string
	Type    string
	Demand  string
	SortBy  string
	Page    int
	PerPage int
}

// SkillListItem is a skill record decorated with its banded demand
// level for the badge next to each skill.
type SkillListItem struct {
	skill.Record
	Demand string `json:"demand"`
}

type SkillFacets struct {
	Types        []string `json:"types"`
	DemandLevels []string `json:"demand_levels"`
}

type SkillListResult struct {
	Items  []SkillListItem
	Meta   listing.PageState
	Facets SkillFacets
}

type SkillListUsecase interface {
	ListSkills(ctx context.Context, params SkillListParams) (SkillListResult, error)
}

type SkillList struct {
	repo      marketdata.Repository
	snapshots *Snapshots
	mode      Mode
	facetCfg  facets.Config
	logger    *log.Logger
}

func NewSkillListUsecase(repo marketdata.Repository, snapshots *Snapshots, mode Mode, facetCfg facets.Config, logger *log.Logger) *SkillList {
	return &SkillList{repo: repo, snapshots: snapshots, mode: mode, facetCfg: facetCfg, logger: logger}
}

func (u *SkillList) ListSkills(ctx context.Context, params SkillListParams) (SkillListResult, error) {
	page, perPage, err := normalizePaging(params.Page, params.PerPage)
	if err != nil {
		return SkillListResult{}, err
	}

	if u.mode == ModeDelegated {
		// The demand band is a local classification; upstream only
		// understands search and type.
		items, meta, err := u.repo.FetchSkills(ctx, marketdata.Query{
			Search:  params.Search,
			Type:    params.Type,
			Page:    page,
			PerPage: perPage,
		})
		if err != nil {
			return SkillListResult{}, err
		}
		state := listing.PageState{Page: page, PerPage: perPage, Total: len(items), Pages: 1}
		if meta != nil {
			state = listing.PageState{Page: meta.Page, PerPage: meta.PerPage, Total: meta.Total, Pages: meta.Pages}
		}
		return SkillListResult{Items: u.decorate(items), Meta: state, Facets: u.skillFacets(items)}, nil
	}

	snapshot, err := u.snapshots.Skills(ctx)
	if err != nil {
		return SkillListResult{}, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = listing.SortJobCount
	}

	items, state := listing.List(snapshot, listing.SkillSchema(u.facetCfg), listing.FilterSpec{
		listing.KeySearch: params.Search,
		listing.KeyType:   params.Type,
		listing.KeyDemand: params.Demand,
	}, sortBy, page, perPage)

	return SkillListResult{Items: u.decorate(items), Meta: state, Facets: u.skillFacets(snapshot)}, nil
}

func (u *SkillList) decorate(records []skill.Record) []SkillListItem {
	out := make([]SkillListItem, 0, len(records))
	for _, r := range records {
		out = append(out, SkillListItem{Record: r, Demand: u.facetCfg.DemandLevel(r.JobCount)})
	}
	return out
}

func (u *SkillList) skillFacets(records []skill.Record) SkillFacets {
	return SkillFacets{
		Types: facets.DistinctValues(records, func(r skill.Record) string { return r.Type }),
		DemandLevels: []string{
			listing.AllValues,
			facets.DemandHigh,
			facets.DemandMedium,
			facets.DemandLow,
		},
	}
}

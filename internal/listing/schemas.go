package listing

import (
	"clmi/internal/domain/job"
	"clmi/internal/domain/skill"
	"clmi/internal/domain/university"
	"clmi/internal/facets"
)

// Filter keys shared with the upstream API query parameters.
const (
	KeySearch          = "search"
	KeyLocation        = "location"
	KeyEmploymentType  = "employment_type"
	KeyExperienceLevel = "experience_level"
	KeyIndustry        = "industry"
	KeySkill           = "skill"
	KeyType            = "type"
	KeyDemand          = "demand"
)

// Sort keys. SortRecent is the job default; numeric keys sort descending,
// name keys ascending.
const (
	SortRecent          = "recent"
	SortTitle           = "title"
	SortName            = "name"
	SortCompany         = "company"
	SortSalary          = "salary"
	SortJobCount        = "job_count"
	SortProgramCount    = "program_count"
	SortEstablishedYear = "established_year"
)

// JobSchema binds job postings to the engine. Free-text keys (search,
// skill) match by containment; the rest match exactly.
func JobSchema() Schema[job.Record] {
	return Schema[job.Record]{
		Filters: map[string]Matcher[job.Record]{
			KeySearch: Search(
				func(r job.Record) string { return r.Title },
				func(r job.Record) string { return r.Company },
			),
			KeyLocation:        Exact(func(r job.Record) string { return r.Location }),
			KeyIndustry:        Exact(func(r job.Record) string { return r.Industry }),
			KeyEmploymentType:  Exact(func(r job.Record) string { return r.EmploymentType }),
			KeyExperienceLevel: Exact(func(r job.Record) string { return r.ExperienceLevel }),
			KeySkill:           SearchSlice(func(r job.Record) []string { return r.Skills }),
		},
		Sorts: map[string]Less[job.Record]{
			SortRecent:  StringDesc(func(r job.Record) string { return r.PostedDate }),
			SortTitle:   StringAsc(func(r job.Record) string { return r.Title }),
			SortCompany: StringAsc(func(r job.Record) string { return r.Company }),
			SortSalary:  NumberDesc(func(r job.Record) float64 { return r.SalaryMax }),
		},
	}
}

// SkillSchema binds skills to the engine. The demand filter matches the
// banded demand level computed from the given facet configuration.
func SkillSchema(fc facets.Config) Schema[skill.Record] {
	return Schema[skill.Record]{
		Filters: map[string]Matcher[skill.Record]{
			KeySearch: Search(func(r skill.Record) string { return r.Name }),
			KeyType:   Exact(func(r skill.Record) string { return r.Type }),
			KeyDemand: Exact(func(r skill.Record) string { return fc.DemandLevel(r.JobCount) }),
		},
		Sorts: map[string]Less[skill.Record]{
			SortName:         StringAsc(func(r skill.Record) string { return r.Name }),
			SortJobCount:     NumberDesc(func(r skill.Record) float64 { return float64(r.JobCount) }),
			SortProgramCount: NumberDesc(func(r skill.Record) float64 { return float64(r.ProgramCount) }),
		},
	}
}

// UniversitySchema binds universities to the engine.
func UniversitySchema() Schema[university.Record] {
	return Schema[university.Record]{
		Filters: map[string]Matcher[university.Record]{
			KeySearch:   Search(func(r university.Record) string { return r.Name }),
			KeyLocation: Exact(func(r university.Record) string { return r.Location }),
			KeyType:     Exact(func(r university.Record) string { return r.Type }),
		},
		Sorts: map[string]Less[university.Record]{
			SortName:            StringAsc(func(r university.Record) string { return r.Name }),
			SortEstablishedYear: NumberDesc(func(r university.Record) float64 { return float64(r.EstablishedYear) }),
			SortProgramCount:    NumberDesc(func(r university.Record) float64 { return float64(r.ProgramCount) }),
		},
	}
}

package job

// Employment types as published by the upstream API.
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)

// Experience levels as published by the upstream API.
const (
	LevelEntry     = "Entry Level"
	LevelMid       = "Mid Level"
	LevelSenior    = "Senior Level"
	LevelExecutive = "Executive"
)

// Record is a job posting snapshot. Records are read-only once fetched;
// Skills is ordered by relevance and may be empty.
type Record struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	Location          string   `json:"location"`
	EmploymentType    string   `json:"employment_type"`
	ExperienceLevel   string   `json:"experience_level"`
	SalaryMin         float64  `json:"salary_min"`
	SalaryMax         float64  `json:"salary_max"`
	DegreeRequired    string   `json:"degree_required"`
	LanguagesRequired string   `json:"languages_required"`
	IsActive          bool     `json:"is_active"`
	PostedDate        string   `json:"posted_date"`
	Skills            []string `json:"skills"`
}

// Stats mirrors the upstream /api/jobs/stats payload.
type Stats struct {
	TotalJobs      int            `json:"total_jobs"`
	ActiveJobs     int            `json:"active_jobs"`
	TotalCompanies int            `json:"total_companies"`
	AvgSalary      float64        `json:"avg_salary"`
	TopIndustries  map[string]int `json:"top_industries"`
	TopLocations   map[string]int `json:"top_locations"`
}

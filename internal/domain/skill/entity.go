package skill

// Skill types form a small closed set upstream.
const (
	TypeTechnical = "Technical"
	TypeSoft      = "Soft"
	TypeLanguage  = "Language"
)

// Record is a skill as returned by the upstream API. Name is unique per
// collection; JobCount is the number of postings referencing the skill.
type Record struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	JobCount     int    `json:"job_count"`
	ProgramCount int    `json:"program_count"`
}

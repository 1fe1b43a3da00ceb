package university

const (
	TypePublic  = "Public"
	TypePrivate = "Private"
)

// Record is a university as returned by the upstream API.
// EstablishedYear never exceeds the current year.
type Record struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	EstablishedYear int    `json:"established_year"`
	ProgramCount    int    `json:"program_count"`
}

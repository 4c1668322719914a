package models

// Sentinel values substituted for optional profile fields GitHub leaves empty
const (
	UnknownValue      = "Unknown"
	NotAvailableValue = "Not Available"
)

// Candidate represents one enriched GitHub profile ready for review
type Candidate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	HTMLURL  string `json:"html_url"`
	Company  string `json:"company"`
}

// Summary represents one entry of the GitHub user listing
type Summary struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Detail holds the optional fields of a GitHub user lookup.
// Empty means GitHub returned null or omitted the field.
type Detail struct {
	Name     string
	Location string
	Email    string
	Company  string
}

// NewCandidate combines a listing entry with its detail lookup
func NewCandidate(s Summary, d Detail) Candidate {
	return Candidate{
		ID:       s.ID,
		Name:     orDefault(d.Name, UnknownValue),
		Username: s.Login,
		Location: orDefault(d.Location, UnknownValue),
		Avatar:   s.AvatarURL,
		Email:    orDefault(d.Email, NotAvailableValue),
		HTMLURL:  s.HTMLURL,
		Company:  orDefault(d.Company, UnknownValue),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

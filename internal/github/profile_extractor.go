package github

import (
	"encoding/json"
	"fmt"

	"candidate-search/internal/models"
)

// userDetail mirrors the optional fields of GET /users/{login}.
// Pointers distinguish JSON null from a present value.
type userDetail struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
}

// ExtractSummaries decodes the body of GET /users
func ExtractSummaries(responseJSON []byte) ([]models.Summary, error) {
	var summaries []models.Summary
	if err := json.Unmarshal(responseJSON, &summaries); err != nil {
		return nil, err
	}

	for i, s := range summaries {
		switch {
		case s.Login == "":
			return nil, fmt.Errorf("user at index %d has no login", i)
		case s.AvatarURL == "":
			return nil, fmt.Errorf("user %s has no avatar_url", s.Login)
		case s.HTMLURL == "":
			return nil, fmt.Errorf("user %s has no html_url", s.Login)
		}
	}

	return summaries, nil
}

// ExtractDetail decodes the body of GET /users/{login}
func ExtractDetail(responseJSON []byte) (models.Detail, error) {
	var raw userDetail
	if err := json.Unmarshal(responseJSON, &raw); err != nil {
		return models.Detail{}, err
	}

	return models.Detail{
		Name:     deref(raw.Name),
		Location: deref(raw.Location),
		Email:    deref(raw.Email),
		Company:  deref(raw.Company),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

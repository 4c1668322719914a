package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCandidate_SubstitutesSentinels(t *testing.T) {
	got := NewCandidate(Summary{ID: 1, Login: "ada", AvatarURL: "a.png", HTMLURL: "u/ada"}, Detail{})

	assert.Equal(t, Candidate{
		ID:       1,
		Name:     "Unknown",
		Username: "ada",
		Location: "Unknown",
		Avatar:   "a.png",
		Email:    "Not Available",
		HTMLURL:  "u/ada",
		Company:  "Unknown",
	}, got)
}

func TestNewCandidate_KeepsUpstreamValues(t *testing.T) {
	got := NewCandidate(
		Summary{ID: 42, Login: "grace", AvatarURL: "g.png", HTMLURL: "u/grace"},
		Detail{Name: "Grace Hopper", Location: "Arlington", Email: "grace@navy.mil", Company: "US Navy"},
	)

	assert.Equal(t, "Grace Hopper", got.Name)
	assert.Equal(t, "Arlington", got.Location)
	assert.Equal(t, "grace@navy.mil", got.Email)
	assert.Equal(t, "US Navy", got.Company)
}

func TestNewCandidate_EveryFieldPopulated(t *testing.T) {
	details := []Detail{
		{},
		{Name: "n"},
		{Location: "l", Email: "e"},
		{Company: "c"},
	}
	for _, d := range details {
		c := NewCandidate(Summary{ID: 7, Login: "x", AvatarURL: "x.png", HTMLURL: "u/x"}, d)
		for field, value := range map[string]string{
			"name": c.Name, "username": c.Username, "location": c.Location, "avatar": c.Avatar,
			"email": c.Email, "html_url": c.HTMLURL, "company": c.Company,
		} {
			assert.NotEmpty(t, value, "field %s empty for detail %+v", field, d)
		}
	}
}

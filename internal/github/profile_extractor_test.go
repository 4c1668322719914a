package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-search/internal/models"
)

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.Detail
	}{
		{"all present", `{"name":"N","location":"L","email":"E","company":"C"}`, models.Detail{Name: "N", Location: "L", Email: "E", Company: "C"}},
		{"all null", `{"name":null,"location":null,"email":null,"company":null}`, models.Detail{}},
		{"all missing", `{}`, models.Detail{}},
		{"extra fields ignored", `{"login":"x","public_repos":3,"company":"C"}`, models.Detail{Company: "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDetail([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDetail_Invalid(t *testing.T) {
	_, err := ExtractDetail([]byte(`not json`))
	assert.Error(t, err)
}

func TestExtractSummaries_RequiresLogin(t *testing.T) {
	_, err := ExtractSummaries([]byte(`[{"id":1,"login":""}]`))
	assert.Error(t, err)
}

func TestExtractSummaries_RequiresURLs(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing avatar", `[{"id":1,"login":"ada","html_url":"u/ada"}]`},
		{"empty avatar", `[{"id":1,"login":"ada","avatar_url":"","html_url":"u/ada"}]`},
		{"missing profile", `[{"id":1,"login":"ada","avatar_url":"a.png"}]`},
		{"null profile", `[{"id":1,"login":"ada","avatar_url":"a.png","html_url":null}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractSummaries([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestExtractSummaries_Valid(t *testing.T) {
	got, err := ExtractSummaries([]byte(`[{"id":1,"login":"ada","avatar_url":"a.png","html_url":"u/ada"}]`))
	require.NoError(t, err)
	assert.Equal(t, []models.Summary{{ID: 1, Login: "ada", AvatarURL: "a.png", HTMLURL: "u/ada"}}, got)
}

package ai

import (
	"strings"
	"testing"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsTopProjects(t *testing.T) {
	data := &models.GitHubData{
		Profile: &models.GitHubProfile{Login: "ada", PublicRepos: 7},
		Repositories: []models.GitHubRepository{
			{Name: "one", Stars: 1},
			{Name: "two", Stars: 2},
			{Name: "three", Stars: 3},
			{Name: "four", Stars: 4},
			{Name: "five", Stars: 5},
			{Name: "six", Stars: 6},
		},
		TopLanguages: []string{"Go"},
	}

	prompt := BuildPrompt(&models.UserInput{FullName: "Ada Lovelace"}, data)

	// Top 5 by stars make it into the prompt, the lowest-starred does not
	for _, name := range []string{"six", "five", "four", "three", "two"} {
		assert.Contains(t, prompt, "- "+name+" (")
	}
	assert.NotContains(t, prompt, "- one (")
}

func TestBuildPromptDefaults(t *testing.T) {
	data := &models.GitHubData{
		Profile:      &models.GitHubProfile{Login: "ada", Bio: "Analyst"},
		TopLanguages: []string{"Go"},
	}

	prompt := BuildPrompt(&models.UserInput{FullName: "Ada Lovelace"}, data)

	assert.Contains(t, prompt, "Name: Ada Lovelace")
	assert.Contains(t, prompt, "Current Role: Software Developer")
	assert.Contains(t, prompt, "Years of Experience: Not specified")
	// Profile bio fills in when the user wrote none
	assert.Contains(t, prompt, "Self-described Bio: Analyst")
	assert.Contains(t, prompt, "Portfolio Style: modern")
	assert.Contains(t, prompt, "LinkedIn: Not provided")
}

func TestBuildPromptUserFieldsWin(t *testing.T) {
	data := &models.GitHubData{
		Profile: &models.GitHubProfile{Login: "ada", Bio: "Analyst", TwitterUsername: "ada_l"},
	}
	userInput := &models.UserInput{
		FullName:          "Ada Lovelace",
		Bio:               "Engine programmer",
		CurrentRole:       "Staff Engineer",
		YearsOfExperience: 12,
		Skills:            []string{"Go", "Rust"},
		TwitterURL:        "https://twitter.com/countess",
	}

	prompt := BuildPrompt(userInput, data)

	assert.Contains(t, prompt, "Self-described Bio: Engine programmer")
	assert.Contains(t, prompt, "Current Role: Staff Engineer")
	assert.Contains(t, prompt, "Years of Experience: 12")
	assert.Contains(t, prompt, "Skills: Go, Rust")
	assert.Contains(t, prompt, "Twitter: https://twitter.com/countess")
}

func TestBuildPromptRequestsJSONStructure(t *testing.T) {
	data := &models.GitHubData{Profile: &models.GitHubProfile{Login: "ada"}}
	prompt := BuildPrompt(&models.UserInput{FullName: "Ada Lovelace"}, data)

	for _, section := range []string{`"hero"`, `"about"`, `"skills"`, `"projects"`, `"experience"`, `"contact"`, `"meta"`} {
		assert.True(t, strings.Contains(prompt, section), "prompt should request %s section", section)
	}
}

func TestBuildPromptDoesNotMutateRepositories(t *testing.T) {
	data := &models.GitHubData{
		Profile: &models.GitHubProfile{Login: "ada"},
		Repositories: []models.GitHubRepository{
			{Name: "low", Stars: 1},
			{Name: "high", Stars: 9},
		},
	}

	BuildPrompt(&models.UserInput{FullName: "Ada Lovelace"}, data)

	assert.Equal(t, "low", data.Repositories[0].Name)
	assert.Equal(t, "high", data.Repositories[1].Name)
}

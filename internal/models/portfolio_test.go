package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "octocat", Slug("OctoCat"))
	assert.Equal(t, "ada", Slug("ada"))
}

func TestBuildPortfolioEntry(t *testing.T) {
	userInput := &UserInput{
		FullName:       "Ada Lovelace",
		Email:          "ada@example.com",
		PortfolioStyle: StyleMinimal,
	}
	data := &GitHubData{
		Profile:      &GitHubProfile{Login: "AdaL"},
		TopLanguages: []string{"Go", "Rust"},
	}
	content := &GeneratedContent{
		Hero:  HeroContent{Headline: "Builder", Subheadline: "Of engines", CTAText: "Say hi"},
		About: AboutContent{Title: "About", Paragraphs: []string{"First.", "Second."}, Highlights: []string{"Ships"}},
		Skills: SkillsContent{Title: "Skills", Categories: []SkillCategory{
			{Name: "Backend", Skills: []string{"Go"}},
		}},
		Projects: ProjectsContent{Title: "Projects", Description: "Work", Featured: []FeaturedProject{
			{Name: "engine", Description: "Analytical", TechStack: []string{"Brass"}, GithubURL: "https://github.com/AdaL/engine"},
		}},
		Contact: ContactContent{Title: "Contact", Description: "Write me", SocialLinks: []SocialLink{
			{Platform: "GitHub", URL: "https://github.com/AdaL"},
		}},
		Meta: MetaContent{PageTitle: "Ada", MetaDescription: "Portfolio", Keywords: []string{"go", "engines"}},
	}

	entry := BuildPortfolioEntry(userInput, data, content, "asset-1")

	assert.Equal(t, "Ada Lovelace's Portfolio", entry.Title)
	assert.Equal(t, "adal", entry.Slug)
	assert.Equal(t, "Builder", entry.HeroHeadline)
	assert.Equal(t, "First.\n\nSecond.", entry.AboutContent)
	assert.Equal(t, "asset-1", entry.Avatar)

	require.Len(t, entry.SkillsCategories, 1)
	assert.Equal(t, "Backend", entry.SkillsCategories[0].CategoryName)

	require.Len(t, entry.FeaturedProjects, 1)
	assert.Equal(t, "engine", entry.FeaturedProjects[0].Name)

	// Generated content had no email, the user-supplied one fills in
	assert.Equal(t, "ada@example.com", entry.Email)

	assert.Equal(t, "go, engines", entry.SEOKeywords)
	assert.Equal(t, StyleMinimal, entry.PortfolioStyle)
	assert.Equal(t, SchemeDark, entry.ColorScheme)
	assert.Equal(t, "AdaL", entry.GithubUsername)
	assert.Equal(t, "https://github.com/AdaL", entry.GithubURL)
	assert.Equal(t, []string{"Go", "Rust"}, entry.TopLanguages)
	assert.NotEmpty(t, entry.GeneratedAt)
}

func TestBuildPortfolioEntryPrefersGeneratedEmail(t *testing.T) {
	userInput := &UserInput{FullName: "Ada Lovelace", Email: "ada@example.com"}
	data := &GitHubData{Profile: &GitHubProfile{Login: "ada"}}
	content := &GeneratedContent{Contact: ContactContent{Email: "hello@ada.dev"}}

	entry := BuildPortfolioEntry(userInput, data, content, "")
	assert.Equal(t, "hello@ada.dev", entry.Email)
}

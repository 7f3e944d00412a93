package models

import (
	"fmt"
	"strings"
	"time"
)

// PortfolioEntryFields is the flat Contentstack record for one portfolio.
// The slug is the lowercased GitHub username and is the sole addressing key
// for later lookups.
type PortfolioEntryFields struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`

	HeroHeadline    string `json:"hero_headline"`
	HeroSubheadline string `json:"hero_subheadline"`
	HeroCTAText     string `json:"hero_cta_text"`

	AboutTitle      string   `json:"about_title"`
	AboutContent    string   `json:"about_content"`
	AboutHighlights []string `json:"about_highlights"`

	Avatar string `json:"avatar"`

	SkillsTitle      string               `json:"skills_title"`
	SkillsCategories []EntrySkillCategory `json:"skills_categories"`

	ProjectsTitle       string         `json:"projects_title"`
	ProjectsDescription string         `json:"projects_description"`
	FeaturedProjects    []EntryProject `json:"featured_projects"`

	ContactTitle       string            `json:"contact_title"`
	ContactDescription string            `json:"contact_description"`
	Email              string            `json:"email"`
	SocialLinks        []EntrySocialLink `json:"social_links"`

	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	SEOKeywords    string `json:"seo_keywords"`

	PortfolioStyle string `json:"portfolio_style"`
	ColorScheme    string `json:"color_scheme"`

	GithubUsername string   `json:"github_username"`
	GithubURL      string   `json:"github_url"`
	TopLanguages   []string `json:"top_languages"`

	GeneratedAt string `json:"generated_at"`
}

type EntrySkillCategory struct {
	CategoryName string   `json:"category_name"`
	SkillsList   []string `json:"skills_list"`
}

type EntryProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Highlights  []string `json:"highlights"`
	GithubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
}

type EntrySocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Slug derives the portfolio addressing key from a GitHub username
func Slug(username string) string {
	return strings.ToLower(username)
}

// BuildPortfolioEntry maps the generated content, fetched GitHub data and
// user style preferences into the flat entry record.
func BuildPortfolioEntry(userInput *UserInput, data *GitHubData, content *GeneratedContent, avatarAssetUID string) *PortfolioEntryFields {
	email := content.Contact.Email
	if email == "" {
		email = userInput.Email
	}

	categories := make([]EntrySkillCategory, 0, len(content.Skills.Categories))
	for _, cat := range content.Skills.Categories {
		categories = append(categories, EntrySkillCategory{
			CategoryName: cat.Name,
			SkillsList:   cat.Skills,
		})
	}

	projects := make([]EntryProject, 0, len(content.Projects.Featured))
	for _, project := range content.Projects.Featured {
		projects = append(projects, EntryProject{
			Name:        project.Name,
			Description: project.Description,
			TechStack:   project.TechStack,
			Highlights:  project.Highlights,
			GithubURL:   project.GithubURL,
			LiveURL:     project.LiveURL,
		})
	}

	links := make([]EntrySocialLink, 0, len(content.Contact.SocialLinks))
	for _, link := range content.Contact.SocialLinks {
		links = append(links, EntrySocialLink{Platform: link.Platform, URL: link.URL})
	}

	return &PortfolioEntryFields{
		Title: fmt.Sprintf("%s's Portfolio", userInput.FullName),
		Slug:  Slug(data.Profile.Login),

		HeroHeadline:    content.Hero.Headline,
		HeroSubheadline: content.Hero.Subheadline,
		HeroCTAText:     content.Hero.CTAText,

		AboutTitle:      content.About.Title,
		AboutContent:    strings.Join(content.About.Paragraphs, "\n\n"),
		AboutHighlights: content.About.Highlights,

		Avatar: avatarAssetUID,

		SkillsTitle:      content.Skills.Title,
		SkillsCategories: categories,

		ProjectsTitle:       content.Projects.Title,
		ProjectsDescription: content.Projects.Description,
		FeaturedProjects:    projects,

		ContactTitle:       content.Contact.Title,
		ContactDescription: content.Contact.Description,
		Email:              email,
		SocialLinks:        links,

		SEOTitle:       content.Meta.PageTitle,
		SEODescription: content.Meta.MetaDescription,
		SEOKeywords:    strings.Join(content.Meta.Keywords, ", "),

		PortfolioStyle: userInput.StyleOrDefault(),
		ColorScheme:    userInput.SchemeOrDefault(),

		GithubUsername: data.Profile.Login,
		GithubURL:      fmt.Sprintf("https://github.com/%s", data.Profile.Login),
		TopLanguages:   data.TopLanguages,

		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

package models

// GeneratedContent is the structured portfolio copy produced by the AI
// backend. The shape matches the JSON structure requested in the prompt;
// validation is a parse attempt only, there is no schema check beyond it.
type GeneratedContent struct {
	Hero       HeroContent     `json:"hero"`
	About      AboutContent    `json:"about"`
	Skills     SkillsContent   `json:"skills"`
	Projects   ProjectsContent `json:"projects"`
	Experience ExperienceBlock `json:"experience"`
	Contact    ContactContent  `json:"contact"`
	Meta       MetaContent     `json:"meta"`
}

type HeroContent struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
}

type AboutContent struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
	Highlights []string `json:"highlights"`
}

type SkillsContent struct {
	Title      string          `json:"title"`
	Categories []SkillCategory `json:"categories"`
}

type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type ProjectsContent struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Featured    []FeaturedProject `json:"featured"`
}

type FeaturedProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Highlights  []string `json:"highlights"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl,omitempty"`
}

type ExperienceBlock struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type ContactContent struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Email       string       `json:"email,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type MetaContent struct {
	PageTitle       string   `json:"pageTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// ColorPalette is a five-color hex palette suggestion for a portfolio style
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

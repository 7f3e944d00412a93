package models

// UserInput holds the user-provided fields of a generation request.
// It is immutable once submitted; the lifecycle is a single request.
type UserInput struct {
	FullName          string   `json:"full_name"`
	Email             string   `json:"email,omitempty"`
	CurrentRole       string   `json:"current_role,omitempty"`
	Company           string   `json:"company,omitempty"`
	YearsOfExperience int      `json:"years_of_experience,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	LinkedinURL       string   `json:"linkedin_url,omitempty"`
	TwitterURL        string   `json:"twitter_url,omitempty"`
	PersonalWebsite   string   `json:"personal_website,omitempty"`
	PortfolioStyle    string   `json:"portfolio_style,omitempty"`
	ColorScheme       string   `json:"color_scheme,omitempty"`
}

// Portfolio style choices
const (
	StyleMinimal      = "minimal"
	StyleModern       = "modern"
	StyleCreative     = "creative"
	StyleProfessional = "professional"
)

// Color scheme choices
const (
	SchemeLight    = "light"
	SchemeDark     = "dark"
	SchemeColorful = "colorful"
)

// StyleOrDefault returns the chosen portfolio style, falling back to modern
func (u *UserInput) StyleOrDefault() string {
	if u.PortfolioStyle == "" {
		return StyleModern
	}
	return u.PortfolioStyle
}

// SchemeOrDefault returns the chosen color scheme, falling back to dark
func (u *UserInput) SchemeOrDefault() string {
	if u.ColorScheme == "" {
		return SchemeDark
	}
	return u.ColorScheme
}

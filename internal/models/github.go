package models

// GitHubProfile is a read-only projection of the GitHub user endpoint
type GitHubProfile struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	AvatarURL       string `json:"avatar_url"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Email           string `json:"email"`
	Blog            string `json:"blog"`
	TwitterUsername string `json:"twitter_username"`
	PublicRepos     int    `json:"public_repos"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	CreatedAt       string `json:"created_at"`
}

// GitHubRepository is a read-only projection of a repository list item
type GitHubRepository struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Homepage    string   `json:"homepage"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Topics      []string `json:"topics"`
	IsForked    bool     `json:"is_forked"`
	UpdatedAt   string   `json:"updated_at"`
}

// GitHubData bundles everything fetched for one username
type GitHubData struct {
	Profile      *GitHubProfile     `json:"profile"`
	Repositories []GitHubRepository `json:"repositories"`
	Languages    map[string]int     `json:"languages"`
	TopLanguages []string           `json:"top_languages"`
}

// TopRepositories returns the n highest-starred repositories. The stored list
// is already star-sorted, so this is a bounded slice.
func (d *GitHubData) TopRepositories(n int) []GitHubRepository {
	if len(d.Repositories) < n {
		n = len(d.Repositories)
	}
	return d.Repositories[:n]
}

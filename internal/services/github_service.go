package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const (
	// maxRepositories bounds the star-ranked repository list
	maxRepositories = 30
	// maxTopLanguages bounds the derived top-language list
	maxTopLanguages = 10
)

// ErrGitHubUserNotFound is returned when the requested username does not exist
var ErrGitHubUserNotFound = errors.New("github user not found")

// usernamePattern matches a github.com profile URL and captures the username
var usernamePattern = regexp.MustCompile(`github\.com/([^/?#]+)`)

// GitHubService fetches profile and repository data from the GitHub API
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a GitHub service. An empty token uses the
// unauthenticated client with its lower rate limits.
func NewGitHubService(token string) *GitHubService {
	if token == "" {
		return &GitHubService{client: github.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubService{client: github.NewClient(tc)}
}

// NewGitHubServiceWithClient creates a GitHub service around an existing client
func NewGitHubServiceWithClient(client *github.Client) *GitHubService {
	return &GitHubService{client: client}
}

// ExtractUsername normalizes a GitHub profile URL or bare username into a
// username. The result is not validated; an invalid name surfaces as a
// downstream fetch failure.
func ExtractUsername(input string) string {
	if match := usernamePattern.FindStringSubmatch(input); match != nil {
		return match[1]
	}
	return strings.TrimSpace(input)
}

// FetchProfile retrieves the user profile for a username
func (s *GitHubService) FetchProfile(ctx context.Context, username string) (*models.GitHubProfile, error) {
	user, _, err := s.client.Users.Get(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrGitHubUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to fetch GitHub profile: %w", err)
	}

	return &models.GitHubProfile{
		Login:           user.GetLogin(),
		Name:            user.GetName(),
		Bio:             user.GetBio(),
		AvatarURL:       user.GetAvatarURL(),
		Company:         user.GetCompany(),
		Location:        user.GetLocation(),
		Email:           user.GetEmail(),
		Blog:            user.GetBlog(),
		TwitterUsername: user.GetTwitterUsername(),
		PublicRepos:     user.GetPublicRepos(),
		Followers:       user.GetFollowers(),
		Following:       user.GetFollowing(),
		CreatedAt:       user.GetCreatedAt().Format(time.RFC3339),
	}, nil
}

// FetchRepositories retrieves up to 100 recently updated repositories for a
// username, drops forks, ranks by star count and keeps the top 30
func (s *GitHubService) FetchRepositories(ctx context.Context, username string) ([]models.GitHubRepository, error) {
	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, _, err := s.client.Repositories.List(ctx, username, opt)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrGitHubUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	return RankRepositories(repos), nil
}

// RankRepositories filters out forks, sorts by stars descending and truncates
// to the repository cap. The sort is stable, so star ties keep the
// recently-updated-first fetch order.
func RankRepositories(repos []*github.Repository) []models.GitHubRepository {
	ranked := make([]models.GitHubRepository, 0, len(repos))
	for _, repo := range repos {
		if repo.GetFork() {
			continue
		}
		ranked = append(ranked, models.GitHubRepository{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			URL:         repo.GetHTMLURL(),
			Homepage:    repo.GetHomepage(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Topics:      repo.Topics,
			IsForked:    repo.GetFork(),
			UpdatedAt:   repo.GetUpdatedAt().Format(time.RFC3339),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})

	if len(ranked) > maxRepositories {
		ranked = ranked[:maxRepositories]
	}
	return ranked
}

// ComputeLanguageStats counts each repository's primary language and returns
// the full mapping plus the top languages ordered by descending count.
// Repositories without a primary language are excluded; count ties keep
// first-appearance order.
func ComputeLanguageStats(repos []models.GitHubRepository) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if _, seen := counts[repo.Language]; !seen {
			order = append(order, repo.Language)
		}
		counts[repo.Language]++
	}

	top := make([]string, len(order))
	copy(top, order)
	sort.SliceStable(top, func(i, j int) bool {
		return counts[top[i]] > counts[top[j]]
	})

	if len(top) > maxTopLanguages {
		top = top[:maxTopLanguages]
	}
	return counts, top
}

// FetchAll fetches profile and repositories concurrently for a GitHub URL or
// bare username and derives the language statistics. A failure on either
// fetch fails the whole call.
func (s *GitHubService) FetchAll(ctx context.Context, githubURLOrUsername string) (*models.GitHubData, error) {
	username := ExtractUsername(githubURLOrUsername)

	var (
		wg         sync.WaitGroup
		profile    *models.GitHubProfile
		repos      []models.GitHubRepository
		profileErr error
		reposErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profileErr = s.FetchProfile(ctx, username)
	}()
	go func() {
		defer wg.Done()
		repos, reposErr = s.FetchRepositories(ctx, username)
	}()
	wg.Wait()

	if profileErr != nil {
		return nil, profileErr
	}
	if reposErr != nil {
		return nil, reposErr
	}

	languages, topLanguages := ComputeLanguageStats(repos)

	logger.WithFields(map[string]interface{}{
		"username":     username,
		"repositories": len(repos),
		"languages":    len(languages),
	}).Info("Fetched GitHub data")

	return &models.GitHubData{
		Profile:      profile,
		Repositories: repos,
		Languages:    languages,
		TopLanguages: topLanguages,
	}, nil
}

// isNotFound checks for a 404 from the GitHub API
func isNotFound(err error) bool {
	var errResp *github.ErrorResponse
	return errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	content *models.GeneratedContent
	err     error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData) (*models.GeneratedContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.content, nil
}

func (s *stubGenerator) StreamContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData, fn func(chunk string) error) error {
	if s.err != nil {
		return s.err
	}
	return fn("chunk-1")
}

func (s *stubGenerator) GeneratePalette(ctx context.Context, style string) (*models.ColorPalette, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ColorPalette{Primary: "#0f172a", Background: "#ffffff"}, nil
}

// newGitHubServer serves the ada profile with more repositories than the
// preview response may include
func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/ada", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"login":      "ada",
			"name":       "Ada Lovelace",
			"avatar_url": "https://avatars.example.com/ada.png",
		})
	})
	mux.HandleFunc("/users/ada/repos", func(w http.ResponseWriter, r *http.Request) {
		repos := make([]map[string]interface{}, 0, 7)
		for i := 0; i < 7; i++ {
			repos = append(repos, map[string]interface{}{
				"name":             fmt.Sprintf("repo-%d", i),
				"stargazers_count": 100 - i,
				"fork":             false,
				"language":         "Go",
			})
		}
		json.NewEncoder(w).Encode(repos)
	})
	return httptest.NewServer(mux)
}

type testEnv struct {
	router   *gin.Engine
	cmsCalls *int
}

func newTestEnv(t *testing.T, githubURL string, generator *stubGenerator) *testEnv {
	t.Helper()

	var cmsCalls int
	cms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cmsCalls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(cms.Close)

	base, err := url.Parse(githubURL + "/")
	require.NoError(t, err)
	githubClient := github.NewClient(nil)
	githubClient.BaseURL = base

	githubService := services.NewGitHubServiceWithClient(githubClient)
	contentService := services.NewContentService(generator)
	contentstackService := services.NewContentstackServiceWithEndpoints(config.ContentstackConfig{
		APIKey:          "stack-key",
		ManagementToken: "management-token",
		ContentType:     "portfolio",
		Environment:     "production",
		Branch:          "main",
	}, cms.URL, cms.URL)
	launchService := services.NewLaunchService(config.LaunchConfig{ProjectID: "proj-1", APIEndpoint: cms.URL}, "production")

	portfolioService := services.NewPortfolioService(githubService, contentService, contentstackService, launchService, "https://folios.example.com")
	handler := NewGenerateHandler(portfolioService)

	router := gin.New()
	router.POST("/api/generate", handler.Generate)
	router.GET("/api/palette", handler.Palette)

	return &testEnv{router: router, cmsCalls: &cmsCalls}
}

func postGenerate(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGeneratePreview(t *testing.T) {
	githubServer := newGitHubServer(t)
	defer githubServer.Close()

	generator := &stubGenerator{content: &models.GeneratedContent{
		Hero: models.HeroContent{Headline: "Analytical engines, modern stacks"},
	}}
	env := newTestEnv(t, githubServer.URL, generator)

	recorder := postGenerate(t, env.router, map[string]interface{}{
		"fullName":  "Ada Lovelace",
		"githubUrl": "ada",
		"mode":      "preview",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool   `json:"success"`
		Mode    string `json:"mode"`
		Data    struct {
			GithubProfile struct {
				Login string `json:"login"`
				Name  string `json:"name"`
			} `json:"githubProfile"`
			Repositories     []models.GitHubRepository `json:"repositories"`
			TopLanguages     []string                  `json:"topLanguages"`
			GeneratedContent models.GeneratedContent   `json:"generatedContent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, "preview", response.Mode)
	assert.Equal(t, "ada", response.Data.GithubProfile.Login)
	assert.Len(t, response.Data.Repositories, 5)
	assert.Equal(t, []string{"Go"}, response.Data.TopLanguages)
	assert.Equal(t, "Analytical engines, modern stacks", response.Data.GeneratedContent.Hero.Headline)

	// Preview must not touch the CMS
	assert.Equal(t, 0, *env.cmsCalls)
}

func TestGenerateValidationFailure(t *testing.T) {
	env := newTestEnv(t, "http://github.invalid", &stubGenerator{})

	recorder := postGenerate(t, env.router, map[string]interface{}{
		"fullName": "A",
		"email":    "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response struct {
		Success bool              `json:"success"`
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.False(t, response.Success)
	assert.Equal(t, "Validation failed", response.Error)
	assert.Equal(t, "min", response.Details["FullName"])
	assert.Equal(t, "required", response.Details["GithubURL"])
	assert.Equal(t, "email", response.Details["Email"])
	assert.Equal(t, 0, *env.cmsCalls)
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	env := newTestEnv(t, "http://github.invalid", &stubGenerator{})

	recorder := postGenerate(t, env.router, map[string]interface{}{
		"fullName":  "Ada Lovelace",
		"githubUrl": "ada",
		"mode":      "dry-run",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGeneratePreviewFailureReturns500(t *testing.T) {
	githubServer := newGitHubServer(t)
	defer githubServer.Close()

	env := newTestEnv(t, githubServer.URL, &stubGenerator{err: fmt.Errorf("model unavailable")})

	recorder := postGenerate(t, env.router, map[string]interface{}{
		"fullName":  "Ada Lovelace",
		"githubUrl": "ada",
		"mode":      "preview",
	})
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "model unavailable")
}

func TestPalette(t *testing.T) {
	env := newTestEnv(t, "http://github.invalid", &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/palette?style=minimal", nil)
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool                `json:"success"`
		Data    models.ColorPalette `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "#0f172a", response.Data.Primary)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/pkg/logger"
)

// GenerationRequest is one portfolio generation submission
type GenerationRequest struct {
	UserInput *models.UserInput
	GithubURL string
}

// GenerationResult is the outcome of a full generate-and-deploy run
type GenerationResult struct {
	PortfolioURL string `json:"portfolio_url"`
	PreviewURL   string `json:"preview_url,omitempty"`
	EntryUID     string `json:"entry_uid"`
	DeploymentID string `json:"deployment_id"`
	Username     string `json:"username"`
}

// PreviewResult carries the fetched data and generated content without any
// CMS or deployment side effects.
type PreviewResult struct {
	GithubData *models.GitHubData       `json:"github_data"`
	Content    *models.GeneratedContent `json:"content"`
}

// PortfolioService orchestrates the generation pipeline: GitHub fetch, AI
// content generation, asset upload, entry publish, deployment trigger and the
// bounded status wait. Stages run strictly in order, every stage failure
// aborts the run and there is no compensation for side effects already made.
type PortfolioService struct {
	githubService       *GitHubService
	contentService      *ContentService
	contentstackService *ContentstackService
	launchService       *LaunchService
	baseURL             string
}

// NewPortfolioService wires the pipeline stages together
func NewPortfolioService(
	githubService *GitHubService,
	contentService *ContentService,
	contentstackService *ContentstackService,
	launchService *LaunchService,
	baseURL string,
) *PortfolioService {
	return &PortfolioService{
		githubService:       githubService,
		contentService:      contentService,
		contentstackService: contentstackService,
		launchService:       launchService,
		baseURL:             baseURL,
	}
}

// GenerateAndDeploy runs the full pipeline for one request
func (s *PortfolioService) GenerateAndDeploy(ctx context.Context, request *GenerationRequest) (*GenerationResult, error) {
	log := logger.WithField("github_url", request.GithubURL)
	log.Info("Starting portfolio generation")

	data, err := s.githubService.FetchAll(ctx, request.GithubURL)
	if err != nil {
		return nil, err
	}

	content, err := s.contentService.GenerateContent(ctx, request.UserInput, data)
	if err != nil {
		return nil, err
	}

	avatarName := fmt.Sprintf("%s-avatar.png", data.Profile.Login)
	avatarUID, err := s.contentstackService.UploadAssetFromURL(ctx, data.Profile.AvatarURL, avatarName)
	if err != nil {
		return nil, err
	}

	entry := models.BuildPortfolioEntry(request.UserInput, data, content, avatarUID)
	created, err := s.contentstackService.CreateAndPublishEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	deployment, err := s.launchService.TriggerDeployment(ctx, created.UID, data.Profile.Login)
	if err != nil {
		return nil, err
	}

	final, err := s.launchService.WaitForDeployment(ctx, deployment.ID)
	if err != nil {
		return nil, err
	}

	log.WithField("slug", entry.Slug).Info("Portfolio generation finished")

	return &GenerationResult{
		PortfolioURL: final.URL,
		PreviewURL:   final.PreviewURL,
		EntryUID:     created.UID,
		DeploymentID: deployment.ID,
		Username:     data.Profile.Login,
	}, nil
}

// GeneratePreview runs the fetch and generation stages only, for inspection
// before committing to the expensive downstream steps.
func (s *PortfolioService) GeneratePreview(ctx context.Context, request *GenerationRequest) (*PreviewResult, error) {
	data, err := s.githubService.FetchAll(ctx, request.GithubURL)
	if err != nil {
		return nil, err
	}

	content, err := s.contentService.GenerateContent(ctx, request.UserInput, data)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{GithubData: data, Content: content}, nil
}

// StreamPreview fetches the GitHub data and streams the generation output
// incrementally, for a live preview surface.
func (s *PortfolioService) StreamPreview(ctx context.Context, request *GenerationRequest, fn func(chunk string) error) error {
	data, err := s.githubService.FetchAll(ctx, request.GithubURL)
	if err != nil {
		return err
	}
	return s.contentService.StreamContent(ctx, request.UserInput, data, fn)
}

// Palette suggests a color palette for a portfolio style
func (s *PortfolioService) Palette(ctx context.Context, style string) (*models.ColorPalette, error) {
	return s.contentService.GeneratePalette(ctx, style)
}

// PortfolioURL derives the public URL for a deployed portfolio
func (s *PortfolioService) PortfolioURL(username string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.baseURL, "/"), models.Slug(username))
}

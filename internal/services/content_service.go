package services

import (
	"context"

	"github.com/alimgiray/gitfolio/internal/ai"
	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/pkg/logger"
)

// ContentService generates portfolio copy through the injected AI backend
type ContentService struct {
	generator ai.Generator
}

// NewContentService creates a content service around a generation backend
func NewContentService(generator ai.Generator) *ContentService {
	return &ContentService{generator: generator}
}

// GenerateContent produces the portfolio content document for a user
func (s *ContentService) GenerateContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData) (*models.GeneratedContent, error) {
	content, err := s.generator.GenerateContent(ctx, userInput, data)
	if err != nil {
		return nil, err
	}

	logger.WithField("username", data.Profile.Login).Info("Content generated")
	return content, nil
}

// StreamContent streams generation output fragments to fn as they arrive
func (s *ContentService) StreamContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData, fn func(chunk string) error) error {
	return s.generator.StreamContent(ctx, userInput, data, fn)
}

// GeneratePalette suggests a color palette for a portfolio style
func (s *ContentService) GeneratePalette(ctx context.Context, style string) (*models.ColorPalette, error) {
	return s.generator.GeneratePalette(ctx, style)
}

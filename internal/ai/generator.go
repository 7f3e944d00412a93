package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/pkg/config"
)

// ErrEmptyCompletion is returned when the backend produced no content at all
var ErrEmptyCompletion = errors.New("no content generated from AI backend")

// ErrUnparsableContent is returned when neither the raw completion nor the
// extracted object substring parses as JSON.
var ErrUnparsableContent = errors.New("AI response is not valid JSON")

// Generator is the shared content-generation contract. Both providers
// implement it identically; selection happens once at process start.
type Generator interface {
	// GenerateContent produces the full portfolio content document
	GenerateContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData) (*models.GeneratedContent, error)

	// StreamContent delivers the completion incrementally, calling fn for
	// each text fragment. It can fail the same ways GenerateContent can.
	StreamContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData, fn func(chunk string) error) error

	// GeneratePalette suggests a color palette for a portfolio style
	GeneratePalette(ctx context.Context, style string) (*models.ColorPalette, error)
}

// NewFromConfig selects the configured provider, defaulting to GROQ for
// faster inference.
func NewFromConfig(cfg config.AIConfig) Generator {
	if strings.ToLower(cfg.Provider) == "openai" {
		return NewOpenAIClient(cfg)
	}
	return NewGroqClient(cfg)
}

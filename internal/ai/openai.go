package ai

import "github.com/alimgiray/gitfolio/pkg/config"

const openAIBaseURL = "https://api.openai.com/v1"

// DefaultOpenAIModel is used when OPENAI_MODEL is not configured
const DefaultOpenAIModel = "gpt-4-turbo-preview"

// NewOpenAIClient returns a generator backed by the OpenAI API
func NewOpenAIClient(cfg config.AIConfig) *Client {
	model := cfg.OpenAIModel
	if model == "" {
		model = DefaultOpenAIModel
	}
	return newClient(openAIBaseURL, cfg.OpenAIAPIKey, model)
}

package ai

import "github.com/alimgiray/gitfolio/pkg/config"

const groqBaseURL = "https://api.groq.com/openai/v1"

// DefaultGroqModel is used when GROQ_MODEL is not configured
const DefaultGroqModel = "llama-3.3-70b-versatile"

// NewGroqClient returns a generator backed by the GROQ API, which offers
// significantly faster inference than general-purpose providers.
func NewGroqClient(cfg config.AIConfig) *Client {
	model := cfg.GroqModel
	if model == "" {
		model = DefaultGroqModel
	}
	return newClient(groqBaseURL, cfg.GroqAPIKey, model)
}

package ai

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/alimgiray/gitfolio/internal/models"
)

// errorPrefixLen bounds the raw-text excerpt included in parse errors
const errorPrefixLen = 200

// objectPattern extracts the outermost {...} span from a completion that
// wrapped its JSON in prose.
var objectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseContent decodes a completion into the portfolio content document.
// The contract is two-phase: a strict parse of the full text, then a single
// bounded fallback that extracts the first object substring and retries.
func ParseContent(raw string) (*models.GeneratedContent, error) {
	var content models.GeneratedContent
	if err := json.Unmarshal([]byte(raw), &content); err == nil {
		return &content, nil
	}

	if match := objectPattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &content); err == nil {
			return &content, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnparsableContent, truncate(raw, errorPrefixLen))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContentJSON = `{
	"hero": {"headline": "Builder of tools", "subheadline": "Go and Rust", "ctaText": "Get in touch"},
	"about": {"title": "About", "paragraphs": ["First.", "Second."], "highlights": ["Ships fast"]},
	"skills": {"title": "Skills", "categories": [{"name": "Backend", "skills": ["Go"]}]},
	"projects": {"title": "Projects", "description": "Selected work", "featured": [
		{"name": "big", "description": "A project", "techStack": ["Go"], "highlights": ["Popular"], "githubUrl": "https://github.com/octocat/big"}
	]},
	"experience": {"title": "Experience", "summary": "Ten years"},
	"contact": {"title": "Contact", "description": "Say hi", "email": "o@example.com", "socialLinks": [{"platform": "GitHub", "url": "https://github.com/octocat"}]},
	"meta": {"pageTitle": "Octocat", "metaDescription": "Portfolio", "keywords": ["go"]}
}`

func TestParseContentStrict(t *testing.T) {
	content, err := ParseContent(validContentJSON)
	require.NoError(t, err)

	assert.Equal(t, "Builder of tools", content.Hero.Headline)
	assert.Equal(t, []string{"First.", "Second."}, content.About.Paragraphs)
	require.Len(t, content.Projects.Featured, 1)
	assert.Equal(t, "big", content.Projects.Featured[0].Name)
	assert.Equal(t, "o@example.com", content.Contact.Email)
}

func TestParseContentExtractsObjectFromProse(t *testing.T) {
	raw := "Here is the portfolio content you asked for:\n\n" + validContentJSON
	content, err := ParseContent(raw)
	require.NoError(t, err)
	assert.Equal(t, "Builder of tools", content.Hero.Headline)
}

func TestParseContentUnparsable(t *testing.T) {
	raw := "I could not produce the content { this is not json"
	_, err := ParseContent(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparsableContent)
	assert.Contains(t, err.Error(), "I could not produce")
}

func TestParseContentErrorTruncatesLongText(t *testing.T) {
	raw := make([]byte, 1000)
	for i := range raw {
		raw[i] = 'x'
	}

	_, err := ParseContent(string(raw))
	require.Error(t, err)
	assert.LessOrEqual(t, len(err.Error()), len(ErrUnparsableContent.Error())+2+errorPrefixLen)
}

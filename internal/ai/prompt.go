package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alimgiray/gitfolio/internal/models"
)

// topProjectCount is how many repositories are embedded into the prompt
const topProjectCount = 5

// BuildPrompt assembles the content-generation prompt from the user-supplied
// fields and the fetched GitHub data.
func BuildPrompt(userInput *models.UserInput, data *models.GitHubData) string {
	topProjects := topProjectsByStars(data.Repositories, topProjectCount)

	var b strings.Builder

	b.WriteString("Generate portfolio website content for a developer with the following information:\n\n")

	b.WriteString("## Personal Information\n")
	fmt.Fprintf(&b, "- Name: %s\n", userInput.FullName)
	fmt.Fprintf(&b, "- Current Role: %s\n", orDefault(userInput.CurrentRole, "Software Developer"))
	fmt.Fprintf(&b, "- Company: %s\n", orDefault(userInput.Company, "Not specified"))
	fmt.Fprintf(&b, "- Years of Experience: %s\n", yearsOrDefault(userInput.YearsOfExperience))
	fmt.Fprintf(&b, "- Self-described Bio: %s\n", orDefault(orDefault(userInput.Bio, data.Profile.Bio), "Not provided"))
	fmt.Fprintf(&b, "- Skills: %s\n", orDefault(strings.Join(userInput.Skills, ", "), "See GitHub data"))
	fmt.Fprintf(&b, "- Portfolio Style: %s\n", userInput.StyleOrDefault())

	b.WriteString("\n## GitHub Profile Data\n")
	fmt.Fprintf(&b, "- Username: %s\n", data.Profile.Login)
	fmt.Fprintf(&b, "- Public Repositories: %d\n", data.Profile.PublicRepos)
	fmt.Fprintf(&b, "- Followers: %d\n", data.Profile.Followers)
	fmt.Fprintf(&b, "- Location: %s\n", orDefault(data.Profile.Location, "Not specified"))
	fmt.Fprintf(&b, "- Top Languages: %s\n", strings.Join(data.TopLanguages, ", "))

	b.WriteString("\n## Top Projects (by stars)\n")
	for _, p := range topProjects {
		fmt.Fprintf(&b, "- %s (%d stars)\n", p.Name, p.Stars)
		fmt.Fprintf(&b, "  - Description: %s\n", orDefault(p.Description, "No description"))
		fmt.Fprintf(&b, "  - Language: %s\n", orDefault(p.Language, "Not specified"))
		fmt.Fprintf(&b, "  - Topics: %s\n", orDefault(strings.Join(p.Topics, ", "), "None"))
		fmt.Fprintf(&b, "  - URL: %s\n", p.URL)
		fmt.Fprintf(&b, "  - Homepage: %s\n", orDefault(p.Homepage, "None"))
	}

	b.WriteString("\n## Social Links\n")
	fmt.Fprintf(&b, "- LinkedIn: %s\n", orDefault(userInput.LinkedinURL, "Not provided"))
	fmt.Fprintf(&b, "- Twitter: %s\n", twitterLink(userInput, data.Profile))
	fmt.Fprintf(&b, "- Personal Website: %s\n", orDefault(orDefault(userInput.PersonalWebsite, data.Profile.Blog), "Not provided"))
	fmt.Fprintf(&b, "- Email: %s\n", orDefault(orDefault(userInput.Email, data.Profile.Email), "Not provided"))

	b.WriteString("\n---\n\n")
	b.WriteString(contentStructure)
	b.WriteString("\nMake the content engaging, professional, and specific to this developer's actual work.\n")
	b.WriteString("Focus on their strongest projects and skills based on the GitHub data.\n")

	return b.String()
}

const contentStructure = `Generate a complete JSON object with the following structure:
{
  "hero": {
    "headline": "A compelling one-liner about the developer",
    "subheadline": "A brief description of their expertise and focus areas",
    "ctaText": "Call-to-action button text"
  },
  "about": {
    "title": "Section title",
    "paragraphs": ["2-3 paragraphs about the developer"],
    "highlights": ["3-5 key achievements or traits"]
  },
  "skills": {
    "title": "Section title",
    "categories": [
      {
        "name": "Category name (e.g., Frontend, Backend, DevOps)",
        "skills": ["List of specific skills"]
      }
    ]
  },
  "projects": {
    "title": "Section title",
    "description": "Brief intro to their work",
    "featured": [
      {
        "name": "Project name",
        "description": "Enhanced description based on GitHub data",
        "techStack": ["Technologies used"],
        "highlights": ["Key features or achievements"],
        "githubUrl": "GitHub URL",
        "liveUrl": "Live URL if available"
      }
    ]
  },
  "experience": {
    "title": "Section title",
    "summary": "Brief experience summary"
  },
  "contact": {
    "title": "Section title",
    "description": "Invitation to connect",
    "email": "Email if available",
    "socialLinks": [
      { "platform": "GitHub", "url": "URL" },
      { "platform": "LinkedIn", "url": "URL" }
    ]
  },
  "meta": {
    "pageTitle": "SEO page title",
    "metaDescription": "SEO meta description (150-160 chars)",
    "keywords": ["SEO keywords"]
  }
}
`

// topProjectsByStars recomputes the highest-starred repositories locally
// without mutating the fetched list.
func topProjectsByStars(repos []models.GitHubRepository, n int) []models.GitHubRepository {
	sorted := make([]models.GitHubRepository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func yearsOrDefault(years int) string {
	if years <= 0 {
		return "Not specified"
	}
	return fmt.Sprintf("%d", years)
}

func twitterLink(userInput *models.UserInput, profile *models.GitHubProfile) string {
	if userInput.TwitterURL != "" {
		return userInput.TwitterURL
	}
	if profile.TwitterUsername != "" {
		return fmt.Sprintf("https://twitter.com/%s", profile.TwitterUsername)
	}
	return "Not provided"
}

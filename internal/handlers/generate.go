package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Request modes
const (
	ModePreview = "preview"
	ModeDeploy  = "deploy"
)

// previewRepositoryCount bounds the repositories echoed back in preview mode
const previewRepositoryCount = 5

// GenerateRequest is the inbound generation request body
type GenerateRequest struct {
	FullName  string `json:"fullName" binding:"required,min=2"`
	GithubURL string `json:"githubUrl" binding:"required"`

	Email             string   `json:"email" binding:"omitempty,email"`
	CurrentRole       string   `json:"currentRole"`
	Company           string   `json:"company"`
	YearsOfExperience int      `json:"yearsOfExperience" binding:"omitempty,min=0,max=50"`
	Skills            []string `json:"skills"`
	Bio               string   `json:"bio" binding:"omitempty,max=500"`
	LinkedinURL       string   `json:"linkedinUrl" binding:"omitempty,url"`
	TwitterURL        string   `json:"twitterUrl" binding:"omitempty,url"`
	PersonalWebsite   string   `json:"personalWebsite" binding:"omitempty,url"`

	PortfolioStyle string `json:"portfolioStyle" binding:"omitempty,oneof=minimal modern creative professional"`
	ColorScheme    string `json:"colorScheme" binding:"omitempty,oneof=light dark colorful"`

	// Mode selects a preview without CMS writes, or the full deployment
	Mode string `json:"mode" binding:"omitempty,oneof=preview deploy"`
}

// GenerateHandler serves the portfolio generation endpoints
type GenerateHandler struct {
	portfolioService *services.PortfolioService
}

// NewGenerateHandler creates a generate handler
func NewGenerateHandler(portfolioService *services.PortfolioService) *GenerateHandler {
	return &GenerateHandler{portfolioService: portfolioService}
}

// Generate handles POST /api/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": validationDetails(err),
		})
		return
	}

	request := toGenerationRequest(&body)

	if body.Mode == ModePreview {
		result, err := h.portfolioService.GeneratePreview(c.Request.Context(), request)
		if err != nil {
			logger.WithError(err).Error("Preview generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"mode":    ModePreview,
			"data": gin.H{
				"githubProfile":    result.GithubData.Profile,
				"repositories":     result.GithubData.TopRepositories(previewRepositoryCount),
				"topLanguages":     result.GithubData.TopLanguages,
				"generatedContent": result.Content,
			},
		})
		return
	}

	result, err := h.portfolioService.GenerateAndDeploy(c.Request.Context(), request)
	if err != nil {
		logger.WithError(err).Error("Portfolio generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"mode":    ModeDeploy,
		"data": gin.H{
			"portfolioUrl": result.PortfolioURL,
			"previewUrl":   result.PreviewURL,
			"username":     result.Username,
			"entryUid":     result.EntryUID,
			"deploymentId": result.DeploymentID,
		},
	})
}

// Stream handles POST /api/generate/stream, delivering generation output as
// server-sent events for a live preview.
func (h *GenerateHandler) Stream(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": validationDetails(err),
		})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	err := h.portfolioService.StreamPreview(c.Request.Context(), toGenerationRequest(&body), func(chunk string) error {
		c.SSEvent("chunk", chunk)
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Streamed generation failed")
		c.SSEvent("error", err.Error())
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", "")
	c.Writer.Flush()
}

// Palette handles GET /api/palette
func (h *GenerateHandler) Palette(c *gin.Context) {
	style := c.DefaultQuery("style", models.StyleModern)

	palette, err := h.portfolioService.Palette(c.Request.Context(), style)
	if err != nil {
		logger.WithError(err).Error("Palette generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": palette})
}

// toGenerationRequest maps the request body onto the pipeline input
func toGenerationRequest(body *GenerateRequest) *services.GenerationRequest {
	return &services.GenerationRequest{
		GithubURL: body.GithubURL,
		UserInput: &models.UserInput{
			FullName:          body.FullName,
			Email:             body.Email,
			CurrentRole:       body.CurrentRole,
			Company:           body.Company,
			YearsOfExperience: body.YearsOfExperience,
			Skills:            body.Skills,
			Bio:               body.Bio,
			LinkedinURL:       body.LinkedinURL,
			TwitterURL:        body.TwitterURL,
			PersonalWebsite:   body.PersonalWebsite,
			PortfolioStyle:    body.PortfolioStyle,
			ColorScheme:       body.ColorScheme,
		},
	}
}

// validationDetails flattens binding errors into per-field messages
func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = fieldErr.Tag()
		}
		return details
	}

	details["body"] = err.Error()
	return details
}

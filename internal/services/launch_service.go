package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/pkg/config"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/alimgiray/gitfolio/pkg/poll"
	"github.com/google/uuid"
)

// autoDeploymentPrefix marks deployment ids synthesized by the webhook
// fallback. No real tracking handle exists for these, so status queries
// always report building and the bounded wait ends in a timeout. Deferring to
// the Launch dashboard is the documented recourse.
const autoDeploymentPrefix = "auto-"

// ErrDeploymentTimeout is returned when the poll attempt cap is exhausted
var ErrDeploymentTimeout = errors.New("deployment timeout - please check the Launch dashboard")

// ErrDeploymentFailed is returned when the deployment reports a failed build
var ErrDeploymentFailed = errors.New("deployment failed")

// LaunchService triggers site deployments and polls their build status
type LaunchService struct {
	cfg         config.LaunchConfig
	environment string
	httpClient  *http.Client
	pollPolicy  poll.Policy
}

// NewLaunchService creates a launch service with the configured poll schedule.
// The environment is the CMS environment builds are requested for.
func NewLaunchService(cfg config.LaunchConfig, environment string) *LaunchService {
	policy := poll.DefaultPolicy()
	if cfg.PollAttempts > 0 {
		policy.MaxAttempts = cfg.PollAttempts
	}
	if cfg.PollInterval > 0 {
		policy.Interval = time.Duration(cfg.PollInterval) * time.Second
	}

	return &LaunchService{
		cfg:         cfg,
		environment: environment,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		pollPolicy:  policy,
	}
}

// SetPollPolicy overrides the poll schedule, used by tests
func (s *LaunchService) SetPollPolicy(policy poll.Policy) {
	s.pollPolicy = policy
}

// TriggerDeployment requests a build for a freshly published entry. The
// direct Launch API is attempted first; an unauthorized response falls back
// to the webhook path, any other API failure is fatal.
func (s *LaunchService) TriggerDeployment(ctx context.Context, entryUID, username string) (*models.Deployment, error) {
	deployment, err := s.triggerViaAPI(ctx, entryUID)
	if err != nil {
		return nil, err
	}
	if deployment != nil {
		logger.WithFields(map[string]interface{}{
			"deployment_id": deployment.ID,
			"entry_uid":     entryUID,
		}).Info("Deployment triggered via Launch API")
		return deployment, nil
	}

	logger.Info("Direct Launch API not available, using webhook trigger")
	return s.triggerViaWebhook(ctx, entryUID, username)
}

// triggerViaAPI posts to the Launch deployments endpoint. A nil deployment
// with nil error means unauthorized, signalling the webhook fallback.
func (s *LaunchService) triggerViaAPI(ctx context.Context, entryUID string) (*models.Deployment, error) {
	body, err := json.Marshal(map[string]interface{}{
		"environment": s.environment,
		"trigger":     "api",
		"metadata": map[string]string{
			"entryUid":    entryUID,
			"triggeredAt": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deployment request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/deployments", strings.TrimRight(s.cfg.APIEndpoint, "/"), s.cfg.ProjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build deployment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deployment trigger request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("launch API error: %s", readErrorBody(resp))
	}

	var result struct {
		ID     string                 `json:"id"`
		Status models.DeploymentState `json:"status"`
		URL    string                 `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode deployment response: %w", err)
	}

	return &models.Deployment{ID: result.ID, Status: result.Status, URL: result.URL}, nil
}

// triggerViaWebhook posts to the configured deployment webhook. Without a
// webhook URL it synthesizes an auto- deployment id and assumes an
// out-of-band publish trigger is configured in the CMS.
func (s *LaunchService) triggerViaWebhook(ctx context.Context, entryUID, username string) (*models.Deployment, error) {
	if s.cfg.WebhookURL != "" {
		body, err := json.Marshal(map[string]string{
			"type":      "portfolio_generated",
			"event_id":  uuid.New().String(),
			"entryUid":  entryUID,
			"username":  username,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Webhook-Secret", s.cfg.WebhookSecret)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("webhook trigger request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			var result struct {
				DeploymentID string `json:"deploymentId"`
				PreviewURL   string `json:"previewUrl"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
				return nil, fmt.Errorf("failed to decode webhook response: %w", err)
			}

			deploymentID := result.DeploymentID
			if deploymentID == "" {
				deploymentID = fmt.Sprintf("deploy-%d", time.Now().UnixMilli())
			}

			logger.WithField("deployment_id", deploymentID).Info("Deployment triggered via webhook")
			return &models.Deployment{
				ID:         deploymentID,
				Status:     models.DeploymentQueued,
				PreviewURL: result.PreviewURL,
			}, nil
		}
	}

	// No webhook configured (or it rejected the call): assume the CMS has an
	// automatic publish trigger and hand back a synthetic handle.
	deployment := &models.Deployment{
		ID:         fmt.Sprintf("%s%s-%d", autoDeploymentPrefix, entryUID, time.Now().UnixMilli()),
		Status:     models.DeploymentQueued,
		PreviewURL: fmt.Sprintf("https://%s.contentstack.app", username),
	}

	logger.WithField("deployment_id", deployment.ID).Info("Assuming automatic deployment trigger")
	return deployment, nil
}

// GetDeploymentStatus queries the build state of a deployment. Synthesized
// auto- ids have no real tracking handle and always report building.
func (s *LaunchService) GetDeploymentStatus(ctx context.Context, deploymentID string) (*models.DeploymentStatus, error) {
	if strings.HasPrefix(deploymentID, autoDeploymentPrefix) {
		return &models.DeploymentStatus{Status: models.DeploymentBuilding}, nil
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/deployments/%s", strings.TrimRight(s.cfg.APIEndpoint, "/"), s.cfg.ProjectID, deploymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get deployment status: %s", readErrorBody(resp))
	}

	var status models.DeploymentStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}
	return &status, nil
}

// WaitForDeployment polls until the deployment reaches a terminal state or
// the attempt cap is exhausted.
func (s *LaunchService) WaitForDeployment(ctx context.Context, deploymentID string) (*models.DeploymentStatus, error) {
	var final *models.DeploymentStatus

	err := poll.Until(ctx, s.pollPolicy, func(ctx context.Context) (bool, error) {
		status, err := s.GetDeploymentStatus(ctx, deploymentID)
		if err != nil {
			return false, err
		}

		switch status.Status {
		case models.DeploymentSuccess:
			final = status
			return true, nil
		case models.DeploymentFailed:
			return false, fmt.Errorf("%w: %s", ErrDeploymentFailed, status.Error)
		default:
			return false, nil
		}
	})
	if errors.Is(err, poll.ErrAttemptsExhausted) {
		return nil, ErrDeploymentTimeout
	}
	if err != nil {
		return nil, err
	}
	return final, nil
}

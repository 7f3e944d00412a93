package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/pkg/config"
	"github.com/alimgiray/gitfolio/pkg/logger"
)

// defaultLocale is the locale used for all entry operations
const defaultLocale = "en-us"

// ErrPortfolioNotFound is returned when no published entry matches a slug
var ErrPortfolioNotFound = errors.New("portfolio not found")

// ContentstackService performs entry, asset and delivery operations against
// the Contentstack REST APIs, the write side through the Management API and
// reads through the Delivery CDN.
type ContentstackService struct {
	cfg         config.ContentstackConfig
	apiEndpoint string
	cdnEndpoint string
	httpClient  *http.Client
}

// CreatedEntry is the identifying part of a create-entry response
type CreatedEntry struct {
	UID   string `json:"uid"`
	Title string `json:"title"`
}

type createdEntryEnvelope struct {
	Entry CreatedEntry `json:"entry"`
}

type createdAssetEnvelope struct {
	Asset struct {
		UID string `json:"uid"`
		URL string `json:"url"`
	} `json:"asset"`
}

// NewContentstackService creates a service using the region endpoints from
// the configuration.
func NewContentstackService(cfg config.ContentstackConfig) *ContentstackService {
	return &ContentstackService{
		cfg:         cfg,
		apiEndpoint: cfg.APIEndpoint(),
		cdnEndpoint: cfg.CDNEndpoint(),
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewContentstackServiceWithEndpoints creates a service against explicit
// endpoints, used by tests.
func NewContentstackServiceWithEndpoints(cfg config.ContentstackConfig, apiEndpoint, cdnEndpoint string) *ContentstackService {
	return &ContentstackService{
		cfg:         cfg,
		apiEndpoint: strings.TrimRight(apiEndpoint, "/"),
		cdnEndpoint: strings.TrimRight(cdnEndpoint, "/"),
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// CreateEntry creates a new entry of the given content type
func (s *ContentstackService) CreateEntry(ctx context.Context, contentType string, entry *models.PortfolioEntryFields) (*CreatedEntry, error) {
	body, err := json.Marshal(map[string]interface{}{"entry": entry})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries?locale=%s", s.apiEndpoint, contentType, defaultLocale)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create entry request: %w", err)
	}
	s.setManagementHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create entry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to create entry: %s", readErrorBody(resp))
	}

	var created createdEntryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode create entry response: %w", err)
	}
	return &created.Entry, nil
}

// PublishEntry publishes an entry to an environment
func (s *ContentstackService) PublishEntry(ctx context.Context, contentType, entryUID, environment string) error {
	body, err := json.Marshal(map[string]interface{}{
		"entry": map[string]interface{}{
			"environments": []string{environment},
			"locales":      []string{defaultLocale},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal publish request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries/%s/publish", s.apiEndpoint, contentType, entryUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build publish request: %w", err)
	}
	s.setManagementHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("publish entry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to publish entry: %s", readErrorBody(resp))
	}
	return nil
}

// CreateAndPublishEntry creates an entry and immediately publishes it to the
// configured environment. A publish failure leaves the unpublished entry in
// place; there is no cleanup.
func (s *ContentstackService) CreateAndPublishEntry(ctx context.Context, entry *models.PortfolioEntryFields) (*CreatedEntry, error) {
	created, err := s.CreateEntry(ctx, s.cfg.ContentType, entry)
	if err != nil {
		return nil, err
	}

	if err := s.PublishEntry(ctx, s.cfg.ContentType, created.UID, s.cfg.Environment); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"entry_uid": created.UID,
		"slug":      entry.Slug,
	}).Info("Entry created and published")

	return created, nil
}

// UploadAssetFromURL downloads an image and re-uploads it to the asset store,
// returning the asset UID.
func (s *ContentstackService) UploadAssetFromURL(ctx context.Context, imageURL, fileName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	description := fmt.Sprintf("Uploaded from %s", imageURL)
	return s.uploadAsset(ctx, data, fileName, description)
}

// uploadAsset forwards binary content to POST /v3/assets as a multipart form
func (s *ContentstackService) uploadAsset(ctx context.Context, data []byte, fileName, description string) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("asset[upload]", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write upload form: %w", err)
	}
	if description != "" {
		if err := form.WriteField("asset[description]", description); err != nil {
			return "", fmt.Errorf("failed to write upload form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiEndpoint+"/v3/assets", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build asset upload request: %w", err)
	}
	s.setManagementHeaders(req)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("asset upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to upload asset: %s", readErrorBody(resp))
	}

	var created createdAssetEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode asset upload response: %w", err)
	}

	logger.WithField("asset_uid", created.Asset.UID).Info("Asset uploaded")
	return created.Asset.UID, nil
}

// GetPortfolioBySlug looks up a published portfolio entry on the Delivery CDN
func (s *ContentstackService) GetPortfolioBySlug(ctx context.Context, slug string) (json.RawMessage, error) {
	query, err := json.Marshal(map[string]string{"slug": models.Slug(slug)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal slug query: %w", err)
	}

	params := url.Values{}
	params.Set("environment", s.cfg.Environment)
	params.Set("query", string(query))
	params.Set("locale", defaultLocale)

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries?%s", s.cdnEndpoint, s.cfg.ContentType, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build delivery request: %w", err)
	}
	req.Header.Set("api_key", s.cfg.APIKey)
	req.Header.Set("access_token", s.cfg.DeliveryToken)
	if s.cfg.Branch != "" && s.cfg.Branch != "main" {
		req.Header.Set("branch", s.cfg.Branch)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("delivery request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch portfolio: %s", readErrorBody(resp))
	}

	var result struct {
		Entries []json.RawMessage `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode delivery response: %w", err)
	}

	if len(result.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPortfolioNotFound, models.Slug(slug))
	}
	return result.Entries[0], nil
}

// PortfolioExists checks whether a published entry exists for a slug
func (s *ContentstackService) PortfolioExists(ctx context.Context, slug string) (bool, error) {
	_, err := s.GetPortfolioBySlug(ctx, slug)
	if errors.Is(err, ErrPortfolioNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// setManagementHeaders applies the Management API auth headers
func (s *ContentstackService) setManagementHeaders(req *http.Request) {
	req.Header.Set("api_key", s.cfg.APIKey)
	req.Header.Set("authorization", s.cfg.ManagementToken)
}

// readErrorBody extracts a bounded error detail from a non-success response
func readErrorBody(resp *http.Response) string {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
}

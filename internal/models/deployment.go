package models

// DeploymentState is the build state reported by the deployment service
type DeploymentState string

const (
	DeploymentQueued   DeploymentState = "queued"
	DeploymentBuilding DeploymentState = "building"
	DeploymentSuccess  DeploymentState = "success"
	DeploymentFailed   DeploymentState = "failed"
)

// IsTerminal checks if the state ends the poll loop
func (s DeploymentState) IsTerminal() bool {
	return s == DeploymentSuccess || s == DeploymentFailed
}

// Deployment identifies a triggered build
type Deployment struct {
	ID         string          `json:"deployment_id"`
	Status     DeploymentState `json:"status"`
	URL        string          `json:"url,omitempty"`
	PreviewURL string          `json:"preview_url,omitempty"`
}

// DeploymentStatus is one status poll observation
type DeploymentStatus struct {
	Status      DeploymentState `json:"status"`
	URL         string          `json:"url,omitempty"`
	PreviewURL  string          `json:"preview_url,omitempty"`
	Error       string          `json:"error,omitempty"`
	StartedAt   string          `json:"started_at,omitempty"`
	CompletedAt string          `json:"completed_at,omitempty"`
}

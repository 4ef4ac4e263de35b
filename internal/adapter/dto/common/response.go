package common

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status     string            `json:"status"`
	Service    string            `json:"service"`
	Components map[string]string `json:"components,omitempty"`
}

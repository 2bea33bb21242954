package models

// HealthResponse represents the response structure for health check endpoints
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message" example:"Server is running"`
	Timestamp string `json:"timestamp" example:"2025-11-10T14:30:00Z"`
}

package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual component.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
}

// EncoderMetrics is returned by GET /v1/metrics/encoder.
type EncoderMetrics struct {
	TotalEncodes int64            `json:"totalEncodes"`
	Succeeded    int64            `json:"succeeded"`
	Failed       int64            `json:"failed"`
	SuccessRate  float64          `json:"successRate"`
	ErrorsByKind map[string]int64 `json:"errorsByKind"`
	Period       string           `json:"period"`
}

// ListResponse wraps list results.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

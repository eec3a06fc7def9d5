package model

import (
	"encoding/json"
	"time"
)

// ComplianceCheck is a recorded compliance evaluation.
// This is a pure domain model with no database-specific dependencies or tags.
type ComplianceCheck struct {
	ID                string          `json:"id"`
	SourceName        string          `json:"source_name"`
	ContentType       string          `json:"content_type"`
	StoragePath       string          `json:"storage_path,omitempty"`
	Guidelines        []string        `json:"guidelines"`
	OverallPercentage float64         `json:"overall_percentage"`
	OverallStatus     Status          `json:"overall_status"`
	Report            json.RawMessage `json:"report" swaggertype:"object"`
	CreatedAt         time.Time       `json:"created_at"`
}

package model

// Status is the pass/warning/fail verdict attached to categories, guidelines and reports.
type Status string

const (
	StatusPass    Status = "Pass"
	StatusWarning Status = "Warning"
	StatusFail    Status = "Fail"
)

// SubCriterion is the outcome for one field within a category.
type SubCriterion struct {
	Name       string  `json:"name"`
	PassFail   string  `json:"pass_fail"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// CategoryEvaluation groups the sub-criteria of one guideline category.
type CategoryEvaluation struct {
	Category           string         `json:"category"`
	CategoryPercentage float64        `json:"category_percentage"`
	Status             Status         `json:"status"`
	SubCriteria        []SubCriterion `json:"sub_criteria"`
}

// GuidelineEvaluation is the scored result of a single guideline.
type GuidelineEvaluation struct {
	Code                string               `json:"code"`
	Guideline           string               `json:"guideline"`
	GuidelinePercentage float64              `json:"guideline_percentage"`
	Status              Status               `json:"status"`
	Categories          []CategoryEvaluation `json:"categories"`
	WhatIsRight         []string             `json:"what_is_right"`
	Improvements        []string             `json:"improvements"`
	Anomalies           []string             `json:"anomalies"`
}

// Report is the aggregated compliance verdict returned to callers.
// ID is set only when the check was recorded in history.
type Report struct {
	ID                        string                `json:"id,omitempty"`
	OverallAccuracyPercentage float64               `json:"overall_accuracy_percentage"`
	OverallStatus             Status                `json:"overall_status"`
	Evaluations               []GuidelineEvaluation `json:"evaluations"`
	WhatIsRight               []string              `json:"what_is_right"`
	Improvements              []string              `json:"improvements"`
	AnomaliesDetected         []string              `json:"anomalies_detected"`
}

// Acknowledgement is the fixed body returned by the legacy check-text endpoint.
type Acknowledgement struct {
	Success bool `json:"success" example:"true"`
}

package compliance

import (
	"fmt"
	"strings"

	"complyapi/internal/model"
)

// Schema is a named JSON schema handed to the language model as a strict
// response format.
type Schema struct {
	Name   string
	Strict bool
	Body   map[string]any
}

func itemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value":      map[string]any{"type": "boolean"},
			"confidence": map[string]any{"type": "number"},
			"evidence":   map[string]any{"type": "string"},
		},
		"required":             []string{"value", "confidence", "evidence"},
		"additionalProperties": false,
	}
}

func stringArray() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

// BuildSchema describes the perception object expected for guidelines.
func BuildSchema(guidelines []*Guideline) Schema {
	props := make(map[string]any)
	keys := make([]string, 0)
	for _, g := range guidelines {
		for _, f := range g.Fields() {
			props[g.Key(f.Name)] = itemSchema()
			keys = append(keys, g.Key(f.Name))
		}
	}
	return Schema{
		Name:   "CompliancePerception",
		Strict: true,
		Body: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_advertisement": map[string]any{"type": "boolean"},
				"detected_items": map[string]any{
					"type":                 "object",
					"properties":           props,
					"required":             keys,
					"additionalProperties": false,
				},
				"improvements":  stringArray(),
				"anomalies":     stringArray(),
				"what_is_right": stringArray(),
			},
			"required":             []string{"is_advertisement", "detected_items", "improvements", "anomalies", "what_is_right"},
			"additionalProperties": false,
		},
	}
}

// ClassificationSchema constrains the classifier to the known ad types.
func ClassificationSchema() Schema {
	return Schema{
		Name:   "Classification",
		Strict: true,
		Body: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"detected_type": map[string]any{"type": "string", "enum": adTypeNames},
			},
			"required":             []string{"detected_type"},
			"additionalProperties": false,
		},
	}
}

// BuildSystemPrompt instructs the model how to fill the perception schema.
func BuildSystemPrompt(guidelines []*Guideline) string {
	var b strings.Builder
	b.WriteString("You are a compliance perceiver for Indian financial advertising guidelines. ")
	b.WriteString("For the input TEXT, return JSON matching the schema. ")
	b.WriteString("Evaluate each field based on the following descriptions:\n")
	for _, g := range guidelines {
		fmt.Fprintf(&b, "\nGuideline: %s\n", g.Name)
		for _, f := range g.Fields() {
			fmt.Fprintf(&b, "%s: %s\n", g.Key(f.Name), f.Description)
		}
	}
	b.WriteString("\nEach detected field must be {value: bool, confidence: 0-1, evidence: string}.")
	return b.String()
}

// ClassificationPrompt is the system prompt for ad-type classification.
const ClassificationPrompt = "Classify the financial advertisement text as one of: " +
	"mutual_fund (mutual funds), investing (general investing), trading (stock trading), " +
	"ipo (IPO related), fno_derivatives (futures, options, derivatives), other. " +
	`Return JSON {"detected_type": "mutual_fund"}`

// MajorityType returns the most frequent ad type; the earliest seen wins ties.
func MajorityType(types []model.AdType) model.AdType {
	if len(types) == 0 {
		return model.AdTypeOther
	}
	counts := make(map[model.AdType]int, len(types))
	best := types[0]
	for _, t := range types {
		counts[t]++
	}
	for _, t := range types {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

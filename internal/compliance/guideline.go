// Package compliance holds the advertisement compliance engine: guideline
// definitions, deterministic perception, merging with model output, and scoring.
// It has no I/O; callers feed it text and optional LLM perceptions.
package compliance

import "complyapi/internal/model"

// Check inspects one chunk of text and reports on a single field.
type Check func(chunk string) model.Perception

// Field is a single evaluable criterion of a guideline.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Pass        string `json:"pass_guidance"`
	Fail        string `json:"fail_guidance"`
	Check       Check  `json:"-"`
}

// Category groups related fields; categories are weighted equally.
type Category struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Guideline is a named rulebook that text is evaluated against.
type Guideline struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Key returns the prefixed perception key for field.
func (g *Guideline) Key(field string) string {
	return g.Code + "_" + field
}

// Fields returns all fields across categories in declaration order.
func (g *Guideline) Fields() []Field {
	var out []Field
	for _, c := range g.Categories {
		out = append(out, c.Fields...)
	}
	return out
}

// Package perceiver asks a language model to judge compliance fields that
// pattern matching cannot see.
package perceiver

import (
	"context"

	"complyapi/internal/compliance"
	"complyapi/internal/model"
)

// Perceiver produces model perceptions and ad type classifications for text chunks.
// Implementations never fail a check: on error they degrade to defaults and
// report the degradation through LLMPerception.Origin.
type Perceiver interface {
	Perceive(ctx context.Context, chunk string, guidelines []*compliance.Guideline) (*compliance.LLMPerception, error)
	Classify(ctx context.Context, chunk string) (model.AdType, error)
	Enabled() bool
}

// Disabled is used when no model is configured.
type Disabled struct{}

// NewDisabled returns a Perceiver that never calls a model.
func NewDisabled() Perceiver { return Disabled{} }

func (Disabled) Perceive(context.Context, string, []*compliance.Guideline) (*compliance.LLMPerception, error) {
	return compliance.DefaultLLMPerception(compliance.OriginDisabled), nil
}

func (Disabled) Classify(context.Context, string) (model.AdType, error) {
	return model.AdTypeOther, nil
}

func (Disabled) Enabled() bool { return false }

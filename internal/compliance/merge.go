package compliance

import "complyapi/internal/model"

// deterministicTrust is the confidence at which a deterministic perception is
// kept regardless of what the model says.
const deterministicTrust = 0.9

// LLMItem is one field as reported by the language model. Value is nil when
// the model omitted it.
type LLMItem struct {
	Value      *bool   `json:"value"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// LLMPerception is the structured answer of the language model for one chunk.
type LLMPerception struct {
	IsAdvertisement bool               `json:"is_advertisement"`
	DetectedItems   map[string]LLMItem `json:"detected_items"`
	Improvements    []string           `json:"improvements,omitempty"`
	Anomalies       []string           `json:"anomalies,omitempty"`
	WhatIsRight     []string           `json:"what_is_right,omitempty"`

	// Origin records how the answer was obtained; see the Origin* constants.
	Origin string `json:"-"`
}

// Origins of an LLMPerception.
const (
	OriginSchema   = "schema"
	OriginFallback = "fallback"
	OriginDefault  = "default"
	OriginDisabled = "disabled"
)

// DefaultLLMPerception is used when no model answer is available.
func DefaultLLMPerception(origin string) *LLMPerception {
	return &LLMPerception{
		IsAdvertisement: true,
		DetectedItems:   map[string]LLMItem{},
		Origin:          origin,
	}
}

// Merge combines deterministic and model perceptions for one chunk.
// High-confidence deterministic results always win; otherwise the model wins
// only when it is strictly more confident.
func Merge(det model.Perceptions, llm *LLMPerception) model.Perceptions {
	merged := make(model.Perceptions, len(det))
	for key, d := range det {
		merged[key] = d
		if d.Confidence >= deterministicTrust || llm == nil {
			continue
		}
		item, ok := llm.DetectedItems[key]
		if !ok || item.Value == nil {
			continue
		}
		if item.Confidence > d.Confidence {
			merged[key] = model.Perception{
				Value:      *item.Value,
				Confidence: item.Confidence,
				Evidence:   item.Evidence,
				Source:     model.SourceLLM,
			}
		}
	}
	return merged
}

// Reduce folds per-chunk perceptions into one map, keeping the most
// confident perception per key. Earlier chunks win ties.
func Reduce(chunks []model.Perceptions) model.Perceptions {
	final := make(model.Perceptions)
	for _, m := range chunks {
		for key, p := range m {
			if cur, ok := final[key]; !ok || p.Confidence > cur.Confidence {
				final[key] = p
			}
		}
	}
	return final
}

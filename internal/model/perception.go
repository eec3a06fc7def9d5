package model

// Perception sources.
const (
	SourceRegex     = "regex"
	SourceHeuristic = "heuristic"
	SourceLLM       = "llm"
	SourceNone      = "none"
)

// Perception is a single judgement about one compliance field in a piece of text.
// Value reports whether the field is satisfied; Confidence is in [0, 1].
type Perception struct {
	Value      bool    `json:"value"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
	Source     string  `json:"source"`
}

// Missing is the perception used for a field nobody reported on.
func Missing() Perception {
	return Perception{Source: SourceNone}
}

// Perceptions maps prefixed field keys (e.g. "asci_not_misleading") to perceptions.
type Perceptions map[string]Perception

package compliance

import "complyapi/internal/model"

var registry = map[string]*Guideline{
	ASCI.Code:  ASCI,
	AMFI.Code:  AMFI,
	Stock.Code: Stock,
}

// Lookup returns the guideline registered under code.
func Lookup(code string) (*Guideline, bool) {
	g, ok := registry[code]
	return g, ok
}

// All returns every registered guideline, ASCI first.
func All() []*Guideline {
	return []*Guideline{ASCI, AMFI, Stock}
}

// Codes returns the codes of guidelines.
func Codes(guidelines []*Guideline) []string {
	out := make([]string, 0, len(guidelines))
	for _, g := range guidelines {
		out = append(out, g.Code)
	}
	return out
}

// Deterministic runs every field check of guidelines against chunk.
func Deterministic(guidelines []*Guideline, chunk string) model.Perceptions {
	out := make(model.Perceptions)
	for _, g := range guidelines {
		for _, f := range g.Fields() {
			if f.Check == nil {
				out[g.Key(f.Name)] = model.Perception{Source: model.SourceHeuristic}
				continue
			}
			out[g.Key(f.Name)] = f.Check(chunk)
		}
	}
	return out
}

package compliance

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"complyapi/internal/model"
)

var adTypeNames = func() []string {
	names := make([]string, 0, len(model.AdTypes))
	for _, t := range model.AdTypes {
		names = append(names, string(t))
	}
	return names
}()

// adTypeAliases are short forms accepted besides the canonical names.
var adTypeAliases = map[string]model.AdType{
	"mf":  model.AdTypeMutualFund,
	"fno": model.AdTypeFnODerivatives,
	"f&o": model.AdTypeFnODerivatives,
}

// minFuzzyLen is the shortest token that may be matched approximately.
const minFuzzyLen = 4

// NormalizeAdType maps a user supplied token such as "Mutual Fund" or "fno"
// onto a known ad type. Unknown tokens report false.
//
// Besides exact names and aliases, a token of at least minFuzzyLen characters
// matches when it appears verbatim in a type name starting at a word boundary,
// so "fund" selects mutual_fund but "a" or "ting" select nothing.
func NormalizeAdType(token string) (model.AdType, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.NewReplacer(" ", "_", "-", "_").Replace(t)
	if t == "" {
		return "", false
	}
	if model.AdType(t).Valid() {
		return model.AdType(t), true
	}
	if a, ok := adTypeAliases[t]; ok {
		return a, true
	}
	if len(t) < minFuzzyLen {
		return "", false
	}
	for _, m := range fuzzy.Find(t, adTypeNames) {
		if contiguous(m.MatchedIndexes) && wordStart(m.Str, m.MatchedIndexes[0]) {
			return model.AdType(m.Str), true
		}
	}
	return "", false
}

func contiguous(idx []int) bool {
	for i := 1; i < len(idx); i++ {
		if idx[i] != idx[i-1]+1 {
			return false
		}
	}
	return len(idx) > 0
}

func wordStart(s string, i int) bool {
	return i == 0 || s[i-1] == '_'
}

// SelectGuidelines picks the guidelines that apply to the declared ad types.
// Mutual funds add AMFI, market products add the stock code, and ASCI always
// applies last.
func SelectGuidelines(types []string) []*Guideline {
	var amfi, stock bool
	for _, raw := range types {
		t, ok := NormalizeAdType(raw)
		if !ok {
			continue
		}
		switch t {
		case model.AdTypeMutualFund:
			amfi = true
		case model.AdTypeInvesting, model.AdTypeTrading, model.AdTypeIPO, model.AdTypeFnODerivatives:
			stock = true
		}
	}

	selected := make([]*Guideline, 0, 3)
	if amfi {
		selected = append(selected, AMFI)
	}
	if stock {
		selected = append(selected, Stock)
	}
	return append(selected, ASCI)
}

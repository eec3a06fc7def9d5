package compliance

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"complyapi/internal/model"
)

var (
	sebiRegPattern       = regexp.MustCompile(`(?i)(SEBI\s*(Reg(istration)?|Reg\.?)\s*(No|Number|#)?\s*[:\-]?\s*[A-Za-z0-9\-/]+)`)
	exchangeLogoPattern  = regexp.MustCompile(`(?i)(bse|nse|stock exchange|exchange\s+logo)`)
	productFieldsPattern = regexp.MustCompile(`(?i)(issuer|tenor|rating|security|YTM|yield to maturity|coupon|maturity)`)
	hyperlinkPattern     = regexp.MustCompile(`(?i)https?://|www\.`)
	smsHyperlinkPattern  = regexp.MustCompile(`(?i)(sms:|https?://\S+|bit\.ly|tinyurl|short\.ly)`)
	regionalLangPattern  = regexp.MustCompile(`(?i)(Hindi|Bengali|Tamil|Telugu|Marathi|Kannada|Gujarati|Malayalam)`)
	superlativePattern   = regexp.MustCompile(`(?i)\b(best|#1|world['’]?s|leading|unrivalled|unbeatable)\b`)
	inflationBeatPattern = regexp.MustCompile(`(?i)(beat inflation|beat the inflation|beat the market)`)
	assurancePattern     = regexp.MustCompile(`(?i)(guarantee|assured|assurance|assured returns?)`)
	gamesPrizesPattern   = regexp.MustCompile(`(?i)(win .* prize|contest|game|lucky draw|prize)`)
	clientDataPattern    = regexp.MustCompile(`(?i)(share.*client|client data|customer data|personal data).*third`)
	liabilitiesPattern   = regexp.MustCompile(`(?i)(liability|liabilities|disclaimer|not responsible|no liability)`)
	approvalsPattern     = regexp.MustCompile(`(?i)(approved by|approval|template|pre-approved|sanctioned)`)
	undertakingPattern   = regexp.MustCompile(`(?i)undertaking|we undertake|undertakes`)
	exemptionPattern     = regexp.MustCompile(`(?i)exempt|exemption`)
	retentionPattern     = regexp.MustCompile(`(?i)(retain|retention).{0,20}(5\s*years|5y|5 years)`)
	reapprovalPattern    = regexp.MustCompile(`(?i)(re-?approval|reapproval|renewal).{0,50}(180|one hundred eighty|180 days|180days)`)
	suspensionPattern    = regexp.MustCompile(`(?i)(suspend|suspension|suspended)`)
	thirdPartyPattern    = regexp.MustCompile(`(?i)(third[- ]party|vendor|agency|agency action)`)
	claimsSourcedPattern = regexp.MustCompile(`(?i)(source:|according to|as per|study by|survey by|data from)`)
	discreditPattern     = regexp.MustCompile(`(?i)\b(discredit|disparag)`)
	sebiLogoPattern      = regexp.MustCompile(`(?i)SEBI\s+logo`)
	wordPattern          = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

	warningPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)mutual funds are subject to market risk`),
		regexp.MustCompile(`(?i)investments? are subject to market risk`),
		regexp.MustCompile(`(?i)returns? are not guaranteed`),
		regexp.MustCompile(`(?i)निवेश बाज़ार जोखिम के अधीन है`),
		regexp.MustCompile(`(?i)nivesh bazar jokhim ke adheen hai`),
	}
	fixedReturnPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)guaranteed\s+\d+%?`),
		regexp.MustCompile(`(?i)assured\s+returns?`),
		regexp.MustCompile(`(?i)fixed\s+returns?`),
	}
	exaggerationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)best ever`),
		regexp.MustCompile(`(?i)once in a lifetime`),
		regexp.MustCompile(`(?i)miracle`),
	}
	celebrityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)brand ambassador`),
		regexp.MustCompile(`(?i)celebrity`),
		regexp.MustCompile(`(?i)actor`),
		regexp.MustCompile(`(?i)actress`),
		regexp.MustCompile(`(?i)cricket star`),
		regexp.MustCompile(`(?i)film star`),
	}
)

// maxAvgWordLength is the plain-language threshold on average word length.
const maxAvgWordLength = 6.5

// firstMatch returns the match of the first pattern (in list order) that hits.
func firstMatch(patterns []*regexp.Regexp, s string) (string, bool) {
	for _, p := range patterns {
		if loc := p.FindStringIndex(s); loc != nil {
			return s[loc[0]:loc[1]], true
		}
	}
	return "", false
}

// isSimpleLanguage reports whether the average word length stays under the threshold.
// Text without words counts as simple.
func isSimpleLanguage(s string) bool {
	words := wordPattern.FindAllString(s, -1)
	if len(words) == 0 {
		return true
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return float64(total)/float64(len(words)) <= maxAvgWordLength
}

// requires passes when any of patterns matches.
func requires(hit, miss float64, patterns ...*regexp.Regexp) Check {
	return func(chunk string) model.Perception {
		ev, ok := firstMatch(patterns, chunk)
		if ok {
			return model.Perception{Value: true, Confidence: hit, Evidence: ev, Source: model.SourceRegex}
		}
		return model.Perception{Value: false, Confidence: miss, Source: model.SourceRegex}
	}
}

// forbids passes when none of patterns matches.
func forbids(hit, miss float64, patterns ...*regexp.Regexp) Check {
	return func(chunk string) model.Perception {
		ev, ok := firstMatch(patterns, chunk)
		if ok {
			return model.Perception{Value: false, Confidence: hit, Evidence: ev, Source: model.SourceRegex}
		}
		return model.Perception{Value: true, Confidence: miss, Source: model.SourceRegex}
	}
}

// quiet drops the matched text from c, for checks whose hit is reported
// without evidence.
func quiet(c Check) Check {
	return func(chunk string) model.Perception {
		p := c(chunk)
		p.Evidence = ""
		return p
	}
}

// assume reports a fixed heuristic judgement for fields plain text cannot reveal.
func assume(value bool, confidence float64) Check {
	return func(string) model.Perception {
		return model.Perception{Value: value, Confidence: confidence, Source: model.SourceHeuristic}
	}
}

func simpleLanguage(yes, no float64, withEvidence bool) Check {
	return func(chunk string) model.Perception {
		simple := isSimpleLanguage(chunk)
		p := model.Perception{Value: simple, Confidence: no, Source: model.SourceHeuristic}
		if simple {
			p.Confidence = yes
		}
		if withEvidence {
			p.Evidence = fmt.Sprintf("avg_word_len_ok=%t", simple)
		}
		return p
	}
}

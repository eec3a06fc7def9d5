package compliance

import "regexp"

var (
	misleadingPattern    = regexp.MustCompile(`(?i)\b(guarantee|assured|100%|risk free)\b`)
	indecentPattern      = regexp.MustCompile(`(?i)\b(fuck|shit|damn|hell)\b`)
	vulnerabilityPattern = regexp.MustCompile(`(?i)\b(fear|scare|urgent|limited time)\b`)
	disparagementPattern = regexp.MustCompile(`(?i)\b(worse|bad|inferior|competitor)\b`)
)

// ASCI is the advertising code that applies to every submission.
var ASCI = &Guideline{
	Code: "asci",
	Name: "ASCI (Advertising Standards Council of India)",
	Categories: []Category{
		{
			Name: "Truthfulness and Honesty",
			Fields: []Field{
				{
					Name:        "is_truthful",
					Description: "Is the content truthful and honest?",
					Pass:        "Content is truthful and honest.",
					Fail:        "Ensure all statements are accurate, verifiable, and not deceptive.",
					Check:       assume(true, 0.5),
				},
				{
					Name:        "not_misleading",
					Description: "Does the ad avoid misleading by omission, ambiguity, or exaggeration?",
					Pass:        "No misleading elements detected.",
					Fail:        "Remove or clarify ambiguous, exaggerated, or omitted information to avoid misleading consumers.",
					Check:       forbids(0.8, 0.8, misleadingPattern),
				},
				{
					Name:        "claims_substantiated",
					Description: "Are all claims backed by evidence or sources?",
					Pass:        "Claims are substantiated with sources.",
					Fail:        "Provide evidence or sources for all claims made in the content.",
					Check:       requires(0.8, 0.8, claimsSourcedPattern),
				},
			},
		},
		{
			Name: "Decency and Non-Offensiveness",
			Fields: []Field{
				{
					Name:        "decent_language",
					Description: "Is the language decent, not obscene or offensive?",
					Pass:        "Language is decent and appropriate.",
					Fail:        "Remove offensive, obscene, or indecent language.",
					Check:       quiet(forbids(0.7, 0.7, indecentPattern)),
				},
				{
					Name:        "not_exploiting_vulnerability",
					Description: "Does it avoid exploiting fear, superstition, or vulnerability?",
					Pass:        "No exploitation of vulnerabilities.",
					Fail:        "Avoid content that exploits fear, superstition, or consumer vulnerabilities.",
					Check:       quiet(forbids(0.6, 0.6, vulnerabilityPattern)),
				},
			},
		},
		{
			Name: "Fairness",
			Fields: []Field{
				{
					Name:        "fair_competition",
					Description: "Does it promote fair competition without unfair advantage?",
					Pass:        "Promotes fair competition.",
					Fail:        "Ensure the content does not take unfair advantage or mislead about competitors.",
					Check:       assume(true, 0.5),
				},
				{
					Name:        "no_disparagement",
					Description: "Does it avoid disparaging competitors or their products?",
					Pass:        "No disparagement of competitors.",
					Fail:        "Remove any language that disparages or denigrates competitors or their products.",
					Check:       quiet(forbids(0.7, 0.7, disparagementPattern)),
				},
			},
		},
	},
}

package compliance

import "regexp"

var (
	arnPattern              = regexp.MustCompile(`(?i)\b(ARN|AMFI Reg)\s*[-: ]?\s*\d+\b`)
	riskDisclaimerPattern   = regexp.MustCompile(`(?i)mutual funds? are subject to market risk`)
	schemeDetailsPattern    = regexp.MustCompile(`(?i)\b(scheme|fund|objective|allocation|NAV)\b`)
	pastPerformancePattern  = regexp.MustCompile(`(?i)past performance may or may not be sustained`)
	assuredReturnsPattern   = regexp.MustCompile(`(?i)\b(assured|guaranteed) returns?\b`)
	celebrityEndorsePattern = regexp.MustCompile(`(?i)\b(celebrity|endorsed by|ambassador)\b`)
	amfiApprovalPattern     = regexp.MustCompile(`(?i)\b(approved|AMFI approved)\b`)
)

// AMFI applies to mutual fund advertisements.
var AMFI = &Guideline{
	Code: "amfi",
	Name: "AMFI (Mutual Funds)",
	Categories: []Category{
		{
			Name: "Disclosures",
			Fields: []Field{
				{
					Name:        "arn_present",
					Description: "Is the AMFI Registration Number (ARN) present?",
					Pass:        "AMFI ARN is present.",
					Fail:        "Include the AMFI Registration Number (ARN) in the content.",
					Check:       quiet(requires(0.9, 0.9, arnPattern)),
				},
				{
					Name:        "risk_disclaimer_present",
					Description: `Is the standard risk disclaimer present (e.g., "Mutual Funds are subject to market risks...")?`,
					Pass:        "Risk disclaimer is present.",
					Fail:        `Add the standard disclaimer: "Mutual Funds are subject to market risks, read all scheme related documents carefully."`,
					Check:       quiet(requires(0.95, 0.95, riskDisclaimerPattern)),
				},
				{
					Name:        "scheme_details_disclosed",
					Description: "Are scheme details (name, objective, asset allocation) disclosed?",
					Pass:        "Scheme details are disclosed.",
					Fail:        "Disclose scheme name, objective, asset allocation, and other required details.",
					Check:       quiet(requires(0.8, 0.8, schemeDetailsPattern)),
				},
				{
					Name:        "past_performance_caveat",
					Description: "Is past performance disclosed with caveat that it does not guarantee future returns?",
					Pass:        "Past performance caveat included.",
					Fail:        `Add caveat: "Past performance may or may not be sustained in future."`,
					Check:       quiet(requires(0.9, 0.9, pastPerformancePattern)),
				},
			},
		},
		{
			Name: "Prohibitions",
			Fields: []Field{
				{
					Name:        "no_assured_returns",
					Description: "No assured or guaranteed returns claimed?",
					Pass:        "No assured returns claimed.",
					Fail:        "Remove any claims of assured or guaranteed returns.",
					Check:       quiet(forbids(0.9, 0.9, assuredReturnsPattern)),
				},
				{
					Name:        "no_misleading_performance",
					Description: "No misleading presentation of performance data?",
					Pass:        "Performance data not misleading.",
					Fail:        "Ensure performance data is presented fairly and not misleading.",
					Check:       assume(true, 0.5),
				},
				{
					Name:        "no_celebrity_endorsement",
					Description: "No unauthorized celebrity endorsements?",
					Pass:        "No celebrity endorsements.",
					Fail:        "Remove celebrity endorsements unless authorized.",
					Check:       quiet(forbids(0.8, 0.8, celebrityEndorsePattern)),
				},
			},
		},
		{
			Name: "Other Compliances",
			Fields: []Field{
				{
					Name:        "simple_language",
					Description: "Is simple language used for investor understanding?",
					Pass:        "Simple language used.",
					Fail:        "Use simple, investor-friendly language.",
					Check:       simpleLanguage(0.6, 0.6, false),
				},
				{
					Name:        "approval_obtained",
					Description: "Evidence of prior approval where required?",
					Pass:        "Approval evidence present.",
					Fail:        "Obtain and indicate prior approval from AMFI/SEBI where required.",
					Check:       quiet(requires(0.7, 0.7, amfiApprovalPattern)),
				},
			},
		},
	},
}

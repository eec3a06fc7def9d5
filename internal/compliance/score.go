package compliance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"complyapi/internal/model"
)

// Status thresholds, in percent.
const (
	PassThreshold    = 95.0
	WarningThreshold = 80.0
)

// StatusFor maps a percentage onto Pass, Warning or Fail.
func StatusFor(pct float64) model.Status {
	switch {
	case pct >= PassThreshold:
		return model.StatusPass
	case pct >= WarningThreshold:
		return model.StatusWarning
	default:
		return model.StatusFail
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// isProhibition reports whether a failed field should also be raised as an anomaly.
func isProhibition(field string) bool {
	return strings.HasPrefix(field, "no_") || strings.HasPrefix(field, "not_")
}

// Evaluate scores guideline g against the reduced perceptions.
// Fields absent from final count as failed.
func Evaluate(g *Guideline, final model.Perceptions) model.GuidelineEvaluation {
	eval := model.GuidelineEvaluation{
		Code:         g.Code,
		Guideline:    g.Name,
		Categories:   make([]model.CategoryEvaluation, 0, len(g.Categories)),
		WhatIsRight:  make([]string, 0),
		Improvements: make([]string, 0),
		Anomalies:    make([]string, 0),
	}

	var sum float64
	for _, cat := range g.Categories {
		passed := 0
		subs := make([]model.SubCriterion, 0, len(cat.Fields))
		for _, f := range cat.Fields {
			p, ok := final[g.Key(f.Name)]
			if !ok {
				p = model.Missing()
			}
			if p.Value {
				passed++
				if p.Evidence != "" {
					eval.WhatIsRight = append(eval.WhatIsRight, fmt.Sprintf("%s (evidence: %s)", f.Pass, p.Evidence))
				} else {
					eval.WhatIsRight = append(eval.WhatIsRight, f.Pass)
				}
			} else {
				eval.Improvements = append(eval.Improvements, f.Fail)
				if isProhibition(f.Name) {
					eval.Anomalies = append(eval.Anomalies,
						fmt.Sprintf("Potential violation in %s: %s (evidence: %s).", cat.Name, f.Name, p.Evidence))
				}
			}
			verdict := "Fail"
			if p.Value {
				verdict = "Pass"
			}
			subs = append(subs, model.SubCriterion{
				Name:       f.Name,
				PassFail:   verdict,
				Confidence: round2(p.Confidence),
				Evidence:   p.Evidence,
			})
		}

		total := max(1, len(cat.Fields))
		pct := round2(100.0 * float64(passed) / float64(total))
		sum += pct
		eval.Categories = append(eval.Categories, model.CategoryEvaluation{
			Category:           cat.Name,
			CategoryPercentage: pct,
			Status:             StatusFor(pct),
			SubCriteria:        subs,
		})
	}

	if n := len(g.Categories); n > 0 {
		eval.GuidelinePercentage = round2(sum / float64(n))
	}
	eval.Status = StatusFor(eval.GuidelinePercentage)
	return eval
}

// Aggregate combines guideline evaluations into the final report.
// With no evaluations the report is a clean 100% pass.
func Aggregate(evals []model.GuidelineEvaluation) *model.Report {
	overall := 100.0
	if len(evals) > 0 {
		var sum float64
		for _, e := range evals {
			sum += e.GuidelinePercentage
		}
		overall = round2(sum / float64(len(evals)))
	}

	report := &model.Report{
		OverallAccuracyPercentage: overall,
		OverallStatus:             StatusFor(overall),
		Evaluations:               evals,
		WhatIsRight:               make([]string, 0),
		Improvements:              make([]string, 0),
		AnomaliesDetected:         make([]string, 0),
	}
	if report.Evaluations == nil {
		report.Evaluations = make([]model.GuidelineEvaluation, 0)
	}
	for _, e := range evals {
		report.WhatIsRight = append(report.WhatIsRight, e.WhatIsRight...)
		report.Improvements = append(report.Improvements, e.Improvements...)
		report.AnomaliesDetected = append(report.AnomaliesDetected, e.Anomalies...)
	}
	report.WhatIsRight = dedupe(report.WhatIsRight)
	report.Improvements = dedupe(report.Improvements)
	report.AnomaliesDetected = dedupe(report.AnomaliesDetected)
	return report
}

// dedupe removes repeated entries, keeping first occurrences in order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

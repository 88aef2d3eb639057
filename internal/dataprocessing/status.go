package dataprocessing

import (
	"strings"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Stage keyword tables for deal status inference. The three sets are
// mutually exclusive; membership is tested on normalized stage text.
var (
	wonStages = map[string]struct{}{
		"h. work order received": {},
		"project completed":      {},
		"k. amount accrued":      {},
		"g. project won":         {},
		"j. invoice sent":        {},
		"i. poc":                 {},
	}

	deadStages = map[string]struct{}{
		"n. not relevant at the moment": {},
		"o. not relevant at all":        {},
		"l. project lost":               {},
		"m. projects on hold":           {},
	}

	openStages = map[string]struct{}{
		"a. lead generated":              {},
		"b. sales qualified leads":       {},
		"c. demo done":                   {},
		"d. feasibility":                 {},
		"e. proposal/commercials sent":   {},
		"f. negotiations":                {},
	}
)

// probabilityMap converts the closure-probability label to a numeric
// close probability.
var probabilityMap = map[string]float64{
	"high":   0.80,
	"medium": 0.50,
	"low":    0.25,
	"":       0.0,
}

// MapDealStatus resolves the canonical deal status. Precedence is
// fixed: an explicit status field of won/dead/on hold short-circuits,
// otherwise the stage text is checked against the won, dead and open
// stage tables in that order, and anything unresolved defaults to Open.
func MapDealStatus(status, stage string) domain.DealStatus {
	switch NormalizeText(status) {
	case "won":
		return domain.DealStatusWon
	case "dead":
		return domain.DealStatusDead
	case "on hold":
		return domain.DealStatusOnHold
	}

	st := NormalizeText(stage)
	if _, ok := wonStages[st]; ok {
		return domain.DealStatusWon
	}
	if _, ok := deadStages[st]; ok {
		return domain.DealStatusDead
	}
	if _, ok := openStages[st]; ok {
		return domain.DealStatusOpen
	}
	return domain.DealStatusOpen
}

// ResolveProbability maps a probability label to its numeric value.
// Unrecognized labels resolve to 0.
func ResolveProbability(raw string) float64 {
	return probabilityMap[NormalizeText(raw)]
}

// execStatusRules is the ordered substring rule list for work order
// execution status. Order is significant and must be preserved: rules
// are tested top to bottom and the first hit wins.
var execStatusRules = []struct {
	substrings []string
	status     domain.ExecStatus
}{
	{[]string{"completed"}, domain.ExecStatusCompleted},
	{[]string{"ongoing", "executed until"}, domain.ExecStatusOngoing},
	{[]string{"not started"}, domain.ExecStatusNotStarted},
	{[]string{"pause", "struck"}, domain.ExecStatusPaused},
	{[]string{"partial"}, domain.ExecStatusPartiallyCompleted},
	{[]string{"pending", "details pending"}, domain.ExecStatusPending},
}

// MapExecStatus resolves the canonical work order execution status from
// raw text, defaulting to Unknown when no rule matches.
func MapExecStatus(raw string) domain.ExecStatus {
	text := NormalizeText(raw)
	for _, rule := range execStatusRules {
		for _, sub := range rule.substrings {
			if strings.Contains(text, sub) {
				return rule.status
			}
		}
	}
	return domain.ExecStatusUnknown
}

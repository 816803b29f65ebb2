package analysis

import (
	"fmt"
	"strings"

	"mundell-fleming/internal/model"
)

// FXOutcome classifies the sign of the exchange-rate move.
type FXOutcome string

const (
	FXStrengthen FXOutcome = "strengthen"
	FXWeaken     FXOutcome = "weaken"
	FXStable     FXOutcome = "stable"
)

func ClassifyFX(eChange float64) FXOutcome {
	switch {
	case eChange > 0:
		return FXStrengthen
	case eChange < 0:
		return FXWeaken
	default:
		return FXStable
	}
}

var fiscalText = map[model.FiscalResponse]string{
	model.FiscalDebtPaydown: "The government uses tariff revenue to pay down debt, which is contractionary and further reduces output.",
	model.FiscalTaxCut:      "The government implements a mild tax cut, providing a partial offset to weaker demand.",
	model.FiscalNeutral:     "There is no significant fiscal policy change.",
}

var monetaryText = map[model.MonetaryPolicy]string{
	model.MonetaryNeutral: "The central bank does not respond, leaving the interest rate relatively unchanged.",
	model.MonetaryEase:    "The central bank eases monetary policy, lowering interest rates and stimulating output.",
	model.MonetaryTighten: "The central bank tightens policy, raising interest rates and reducing output.",
}

var fxText = map[FXOutcome]string{
	FXStrengthen: "On net, the exchange rate is expected to strengthen due to improving net exports and/or higher interest rates.",
	FXWeaken:     "On net, the exchange rate is expected to weaken due to lower interest rates or weaker domestic demand.",
	FXStable:     "The exchange rate is expected to remain broadly stable, as opposing forces balance out.",
}

// Narrative returns the summary sentences in reading order:
// tariff, AD drag (only when there is drag), fiscal, monetary, FX.
func Narrative(in model.PolicyInputs, res model.EquilibriumResult) []string {
	out := make([]string, 0, 5)

	out = append(out, fmt.Sprintf(
		"A tariff shock of %.1f%% of GDP boosts net exports by %.1f%%, which tends to increase output and support the exchange rate.",
		in.TariffShock, res.NetExportsBoost,
	))

	if in.ADContraction > 0 {
		out = append(out, fmt.Sprintf(
			"However, higher prices lead to an aggregate demand contraction of %.1f%% of GDP, offsetting some of the initial boost.",
			in.ADContraction,
		))
	}

	out = append(out, fiscalText[in.Fiscal])
	out = append(out, monetaryText[in.Monetary])
	out = append(out, fxText[ClassifyFX(res.EChange)])
	return out
}

// NarrativeText joins the narrative into one paragraph.
func NarrativeText(in model.PolicyInputs, res model.EquilibriumResult) string {
	return strings.Join(Narrative(in, res), " ")
}

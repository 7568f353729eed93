package detect

import (
	"math"

	"github.com/credo-scan/credo/internal/model"
)

// Fusion constants. These are heuristics, not calibrated against
// labeled data; they are kept in one place so recalibration touches
// nothing else. Changing any of them changes scores for existing
// inputs, so treat them as a compatibility surface.
const (
	fakeScoreCeiling = 50.0 // weighted indicator total that maps to 100
	credScoreCeiling = 20.0 // raw credibility total that maps to 100
	credDiscount     = 0.3  // fraction of normalized credibility subtracted

	complexityMinWords  = 100
	complexityMinAvgLen = 5.0
	complexityBonus     = 10.0 // reward for long, lexically rich text

	capsPenaltyFactor  = 20.0 // per unit of caps ratio
	punctPenaltyPoints = 5.0  // per run of repeated !/?

	tierMediumFloor = 30.0
	tierHighFloor   = 60.0
)

const fusionFormula = "clamp(min(fake/50,1)*100 - min(cred/20,1)*100*0.3 - complexity_bonus + caps_ratio*20 + punct_runs*5, 0, 100)"

// fuse combines the matcher totals and text features into the final
// 0-100 score, returning the full term-by-term breakdown alongside it.
func fuse(fakeScore, credScore float64, f model.TextFeatures) (float64, model.Breakdown) {
	normalizedFake := math.Min(100, fakeScore/fakeScoreCeiling*100)
	normalizedCred := math.Min(100, credScore/credScoreCeiling*100)

	bonus := 0.0
	if f.WordCount > complexityMinWords && f.AvgWordLength > complexityMinAvgLen {
		bonus = complexityBonus
	}

	penalty := f.CapsRatio*capsPenaltyFactor + float64(f.ExcessivePunct)*punctPenaltyPoints

	final := normalizedFake - normalizedCred*credDiscount - bonus + penalty
	final = math.Max(0, math.Min(100, final))
	final = round2(final)

	return final, model.Breakdown{
		FakeScore:        fakeScore,
		CredibilityScore: credScore,
		NormalizedFake:   normalizedFake,
		NormalizedCred:   normalizedCred,
		ComplexityBonus:  bonus,
		StylePenalty:     penalty,
		Formula:          fusionFormula,
	}
}

// verdictFor maps the final score to its tier. Lower bounds are
// inclusive: 30.00 is already medium, 60.00 already high.
func verdictFor(score float64) model.Verdict {
	switch {
	case score < tierMediumFloor:
		return model.Verdict{
			Label:          "Likely Reliable",
			Tier:           model.TierLow,
			Description:    "This article shows characteristics of reliable news.",
			Recommendation: "Still verify with multiple trusted sources.",
		}
	case score < tierHighFloor:
		return model.Verdict{
			Label:          "Questionable",
			Tier:           model.TierMedium,
			Description:    "This article shows some red flags.",
			Recommendation: "Verify information carefully before sharing.",
		}
	default:
		return model.Verdict{
			Label:          "Likely Fake/Misleading",
			Tier:           model.TierHigh,
			Description:    "This article shows strong indicators of fake or misleading news.",
			Recommendation: "Exercise extreme caution. Do not share without verification.",
		}
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

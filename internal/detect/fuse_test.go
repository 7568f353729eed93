package detect

import (
	"testing"

	"github.com/credo-scan/credo/internal/model"
)

func TestVerdictFor_TierBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		label string
		tier  model.VerdictTier
	}{
		{0, "Likely Reliable", model.TierLow},
		{29.99, "Likely Reliable", model.TierLow},
		{30.00, "Questionable", model.TierMedium},
		{59.99, "Questionable", model.TierMedium},
		{60.00, "Likely Fake/Misleading", model.TierHigh},
		{100, "Likely Fake/Misleading", model.TierHigh},
	}

	for _, tc := range cases {
		v := verdictFor(tc.score)
		if v.Label != tc.label {
			t.Errorf("Score %v: expected label %q, got %q", tc.score, tc.label, v.Label)
		}
		if v.Tier != tc.tier {
			t.Errorf("Score %v: expected tier %s, got %s", tc.score, tc.tier, v.Tier)
		}
		if v.Description == "" || v.Recommendation == "" {
			t.Errorf("Score %v: expected description and recommendation to be set", tc.score)
		}
	}
}

func TestFuse_Normalization(t *testing.T) {
	var f model.TextFeatures

	// fake 25 of ceiling 50 -> 50 points
	score, b := fuse(25, 0, f)
	if b.NormalizedFake != 50 {
		t.Errorf("Expected normalized fake 50, got %v", b.NormalizedFake)
	}
	if score != 50 {
		t.Errorf("Expected score 50, got %v", score)
	}

	// Normalized values saturate at 100
	_, b = fuse(500, 500, f)
	if b.NormalizedFake != 100 {
		t.Errorf("Expected normalized fake capped at 100, got %v", b.NormalizedFake)
	}
	if b.NormalizedCred != 100 {
		t.Errorf("Expected normalized cred capped at 100, got %v", b.NormalizedCred)
	}
}

func TestFuse_CredibilityDiscount(t *testing.T) {
	var f model.TextFeatures

	// cred 10 of ceiling 20 -> 50 normalized -> 15 points off
	score, b := fuse(25, 10, f)
	if b.NormalizedCred != 50 {
		t.Errorf("Expected normalized cred 50, got %v", b.NormalizedCred)
	}
	if score != 35 {
		t.Errorf("Expected 50 - 15 = 35, got %v", score)
	}
}

func TestFuse_ComplexityBonus(t *testing.T) {
	long := model.TextFeatures{WordCount: 101, AvgWordLength: 5.1}
	score, b := fuse(25, 0, long)
	if b.ComplexityBonus != 10 {
		t.Errorf("Expected bonus 10, got %v", b.ComplexityBonus)
	}
	if score != 40 {
		t.Errorf("Expected 50 - 10 = 40, got %v", score)
	}

	// Both conditions are strict: exactly 100 words or exactly 5.0
	// average length earns nothing.
	for _, f := range []model.TextFeatures{
		{WordCount: 100, AvgWordLength: 5.1},
		{WordCount: 101, AvgWordLength: 5.0},
		{WordCount: 50, AvgWordLength: 9.0},
	} {
		_, b := fuse(25, 0, f)
		if b.ComplexityBonus != 0 {
			t.Errorf("Features %+v: expected no bonus, got %v", f, b.ComplexityBonus)
		}
	}
}

func TestFuse_StylePenalty(t *testing.T) {
	f := model.TextFeatures{CapsRatio: 0.5, ExcessivePunct: 3}
	score, b := fuse(0, 0, f)

	// 0.5*20 + 3*5 = 25
	if b.StylePenalty != 25 {
		t.Errorf("Expected style penalty 25, got %v", b.StylePenalty)
	}
	if score != 25 {
		t.Errorf("Expected score 25 from penalty alone, got %v", score)
	}
}

func TestFuse_ClampsToRange(t *testing.T) {
	// Heavy credibility with no indicators pushes below zero
	score, _ := fuse(0, 20, model.TextFeatures{})
	if score != 0 {
		t.Errorf("Expected clamp to 0, got %v", score)
	}

	// Saturated fake plus penalties pushes above 100
	score, _ = fuse(100, 0, model.TextFeatures{CapsRatio: 1, ExcessivePunct: 10})
	if score != 100 {
		t.Errorf("Expected clamp to 100, got %v", score)
	}
}

func TestFuse_RoundsToTwoDecimals(t *testing.T) {
	// caps ratio 1/3 -> penalty 6.6666... -> final 6.67
	score, _ := fuse(0, 0, model.TextFeatures{CapsRatio: 1.0 / 3.0})
	if score != 6.67 {
		t.Errorf("Expected 6.67, got %v", score)
	}
}

func TestFuse_BreakdownIsTransparent(t *testing.T) {
	score, b := fuse(16, 3, model.TextFeatures{CapsRatio: 0.25, ExcessivePunct: 1})

	// Recompute from the breakdown terms
	recomputed := b.NormalizedFake - b.NormalizedCred*credDiscount - b.ComplexityBonus + b.StylePenalty
	if round2(recomputed) != score {
		t.Errorf("Breakdown terms give %v, final score is %v", round2(recomputed), score)
	}
	if b.Formula == "" {
		t.Error("Expected formula to be recorded")
	}
}

package risk

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mrsinham/healthforge/internal/assessment"
)

func record(mod func(*assessment.AnswerRecord)) assessment.AnswerRecord {
	rec := assessment.AnswerRecord{
		Age:      "45",
		BMI:      "22",
		BP:       "120",
		Activity: assessment.ActivityModerate,
		Smoke:    assessment.SmokeNo,
		History:  assessment.Tags{},
		Symptoms: assessment.Tags{},
	}
	if mod != nil {
		mod(&rec)
	}
	return rec
}

func TestEvaluate_ObeseHypertensive(t *testing.T) {
	got := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.BMI = "32"
		r.BP = "150"
	}))

	want := Result{
		Score:           55,
		CardiacScore:    45,
		MetabolicScore:  45,
		Recommendations: []string{RecObesity, RecHighBP},
		Positives:       []string{PositiveNonSmoker},
		Actions: []Action{
			{Kind: ActionUrgent, Text: ActDiet},
			{Kind: ActionLongterm, Text: ActWeightLoss},
			{Kind: ActionUrgent, Text: ActMonitorBP},
		},
		Tier: Classify(55),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}
	if got.Tier.Label != "Moderate Risk" {
		t.Errorf("Expected Moderate Risk, got %s", got.Tier.Label)
	}
}

func TestEvaluate_CardiacSymptomsComeFirst(t *testing.T) {
	got := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.BP = "150"
		r.Symptoms = assessment.Tags{assessment.SymptomChestPain, assessment.SymptomDizziness}
	}))

	if got.Score != 10+25+40 {
		t.Errorf("Expected score 75, got %d", got.Score)
	}
	if got.CardiacScore != 15+30+50 {
		t.Errorf("Expected cardiac 95, got %d", got.CardiacScore)
	}
	if got.Recommendations[0] != RecCardiac {
		t.Errorf("Expected cardiac recommendation first, got %q", got.Recommendations[0])
	}
	if got.Actions[0] != (Action{Kind: ActionUrgent, Text: ActCardiologist}) {
		t.Errorf("Expected cardiologist action first, got %+v", got.Actions[0])
	}
	if got.Tier.Level != LevelHigh {
		t.Errorf("Expected high tier, got %s", got.Tier.Level)
	}
}

func TestEvaluate_HealthyProfile(t *testing.T) {
	got := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.Activity = assessment.ActivityActive
	}))

	want := Result{
		Score:           10,
		CardiacScore:    15,
		MetabolicScore:  15,
		Recommendations: []string{RecMaintainHabits},
		Positives:       []string{PositiveHealthyBMI, PositiveNormalBP, PositiveNonSmoker, PositiveActive},
		Actions:         []Action{{Kind: ActionRegular, Text: ActRoutineCheck}},
		Tier:            Classify(10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}
	if got.Tier.Label != "Low Risk" {
		t.Errorf("Expected Low Risk, got %s", got.Tier.Label)
	}
}

func TestEvaluate_YoungAgeCapsPositives(t *testing.T) {
	got := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.Age = "25"
		r.Activity = assessment.ActivityActive
	}))

	want := []string{PositiveYoung, PositiveHealthyBMI, PositiveNormalBP, PositiveNonSmoker}
	if diff := cmp.Diff(want, got.Positives); diff != "" {
		t.Errorf("Positives mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_WorstCaseIsClamped(t *testing.T) {
	got := Evaluate(assessment.AnswerRecord{
		Age:      "70",
		BMI:      "40",
		BP:       "190",
		Activity: assessment.ActivitySedentary,
		Smoke:    assessment.SmokeYes,
		History:  assessment.Tags{assessment.HistoryDiabetes, assessment.HistoryHeartDisease},
		Symptoms: assessment.Tags{
			assessment.SymptomChestPain,
			assessment.SymptomShortnessOfBreath,
			assessment.SymptomFatigue,
			assessment.SymptomThirst,
		},
	})

	if got.Score != 99 {
		t.Errorf("Expected score clamped to 99, got %d", got.Score)
	}
	if got.CardiacScore != 100 {
		t.Errorf("Expected cardiac clamped to 100, got %d", got.CardiacScore)
	}
	// 15 base + 30 bmi + 40 diabetes + 10 sedentary, screening rule suppressed
	if got.MetabolicScore != 95 {
		t.Errorf("Expected metabolic 95, got %d", got.MetabolicScore)
	}
	if len(got.Actions) != MaxItems {
		t.Errorf("Expected %d actions, got %d", MaxItems, len(got.Actions))
	}
	if len(got.Positives) != 0 {
		t.Errorf("Expected no positives, got %v", got.Positives)
	}
	if got.Positives == nil {
		t.Error("Positives should be empty, not nil")
	}
}

func TestEvaluate_DiabetesHistorySuppressesSymptomRule(t *testing.T) {
	symptoms := assessment.Tags{assessment.SymptomThirst, assessment.SymptomUrination}

	without := Evaluate(record(func(r *assessment.AnswerRecord) { r.Symptoms = symptoms }))
	if !slices.Contains(without.Recommendations, RecDiabetes) {
		t.Errorf("Expected diabetes recommendation, got %v", without.Recommendations)
	}
	if without.Score != 35 {
		t.Errorf("Expected score 35, got %d", without.Score)
	}

	with := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.Symptoms = symptoms
		r.History = assessment.Tags{assessment.HistoryDiabetes}
	}))
	if slices.Contains(with.Recommendations, RecDiabetes) {
		t.Errorf("Known diabetics should not get the screening recommendation")
	}
	if with.Score != 30 {
		t.Errorf("Expected score 30, got %d", with.Score)
	}
	if with.MetabolicScore != 55 {
		t.Errorf("Expected metabolic 55, got %d", with.MetabolicScore)
	}
}

func TestEvaluate_FatigueCountsForBothGroups(t *testing.T) {
	got := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.Symptoms = assessment.Tags{assessment.SymptomFatigue, assessment.SymptomDizziness, assessment.SymptomThirst}
	}))
	if got.Score != 10+40+25 {
		t.Errorf("Expected both symptom rules, score = %d", got.Score)
	}
}

func TestEvaluate_DefaultsForUnparseableNumbers(t *testing.T) {
	blank := Evaluate(assessment.AnswerRecord{})
	junk := Evaluate(assessment.AnswerRecord{Age: "abc", BMI: "n/a", BP: "0"})

	if diff := cmp.Diff(blank, junk); diff != "" {
		t.Errorf("Junk input should match defaults (-blank +junk):\n%s", diff)
	}
	// defaults: age 30, bmi 22, bp 120
	want := []string{PositiveYoung, PositiveHealthyBMI, PositiveNormalBP, PositiveNonSmoker}
	if diff := cmp.Diff(want, blank.Positives); diff != "" {
		t.Errorf("Default positives mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_LeadingNumericPrefix(t *testing.T) {
	got := Evaluate(record(func(r *assessment.AnswerRecord) {
		r.BMI = "31.2 kg/m2"
		r.BP = "145/90"
	}))
	if got.Score != 55 {
		t.Errorf("Expected prefix parsing to trigger both vitals rules, score = %d", got.Score)
	}
}

func TestEvaluate_BMIBoundaries(t *testing.T) {
	tests := []struct {
		bmi     string
		healthy bool
		obese   bool
	}{
		{"18.4", false, false},
		{"18.5", true, false},
		{"24.9", true, false},
		{"24.95", false, false},
		{"30", false, false},
		{"30.1", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.bmi, func(t *testing.T) {
			got := Evaluate(record(func(r *assessment.AnswerRecord) { r.BMI = tc.bmi }))
			if slices.Contains(got.Positives, PositiveHealthyBMI) != tc.healthy {
				t.Errorf("BMI %s: healthy = %v, want %v", tc.bmi, !tc.healthy, tc.healthy)
			}
			if slices.Contains(got.Recommendations, RecObesity) != tc.obese {
				t.Errorf("BMI %s: obese = %v, want %v", tc.bmi, !tc.obese, tc.obese)
			}
		})
	}
}

func TestEvaluate_BPBoundary(t *testing.T) {
	at := Evaluate(record(func(r *assessment.AnswerRecord) { r.BP = "140" }))
	if !slices.Contains(at.Positives, PositiveNormalBP) {
		t.Error("BP 140 should count as normal")
	}
	above := Evaluate(record(func(r *assessment.AnswerRecord) { r.BP = "141" }))
	if !slices.Contains(above.Recommendations, RecHighBP) {
		t.Error("BP 141 should be flagged")
	}
}

func TestEvaluate_OverflowingNumbersSaturate(t *testing.T) {
	const huge = "99999999999999999999"

	bp := Evaluate(record(func(r *assessment.AnswerRecord) { r.BP = huge }))
	if !slices.Contains(bp.Recommendations, RecHighBP) {
		t.Errorf("Huge BP should be flagged high, got %v", bp.Recommendations)
	}
	if slices.Contains(bp.Positives, PositiveNormalBP) {
		t.Error("Huge BP should not count as normal")
	}
	if bp.Score != 35 {
		t.Errorf("Expected score 35, got %d", bp.Score)
	}

	age := Evaluate(record(func(r *assessment.AnswerRecord) { r.Age = huge }))
	if slices.Contains(age.Positives, PositiveYoung) {
		t.Error("Huge age should not count as young")
	}

	bmi := Evaluate(record(func(r *assessment.AnswerRecord) { r.BMI = "1e999" }))
	if !slices.Contains(bmi.Recommendations, RecObesity) {
		t.Errorf("Overflowing BMI should be flagged obese, got %v", bmi.Recommendations)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	rec := record(func(r *assessment.AnswerRecord) {
		r.BMI = "33"
		r.Smoke = assessment.SmokeYes
		r.Activity = assessment.ActivitySedentary
		r.Symptoms = assessment.Tags{assessment.SymptomChestPain, assessment.SymptomShortnessOfBreath}
	})
	first := Evaluate(rec)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Evaluate(rec)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestEvaluate_RecommendationsUniqueAndCapped(t *testing.T) {
	got := Evaluate(assessment.AnswerRecord{
		BMI:      "35",
		BP:       "160",
		Symptoms: assessment.Tags{assessment.SymptomChestPain, assessment.SymptomDizziness, assessment.SymptomThirst, assessment.SymptomUrination},
	})
	if len(got.Recommendations) > MaxItems {
		t.Errorf("Recommendations exceed cap: %v", got.Recommendations)
	}
	seen := map[string]bool{}
	for _, r := range got.Recommendations {
		if seen[r] {
			t.Errorf("Duplicate recommendation %q", r)
		}
		seen[r] = true
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("dedupe mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		label string
		color ColorToken
	}{
		{0, "Low Risk", ColorSuccess},
		{39, "Low Risk", ColorSuccess},
		{40, "Moderate Risk", ColorWarning},
		{74, "Moderate Risk", ColorWarning},
		{75, "High Risk", ColorDanger},
		{99, "High Risk", ColorDanger},
	}
	for _, tc := range tests {
		tier := Classify(tc.score)
		if tier.Label != tc.label {
			t.Errorf("Classify(%d).Label = %s, want %s", tc.score, tier.Label, tc.label)
		}
		if tier.Color != tc.color {
			t.Errorf("Classify(%d).Color = %s, want %s", tc.score, tier.Color, tc.color)
		}
	}
}

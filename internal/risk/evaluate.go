// Package risk scores a completed questionnaire. Evaluate is pure: the same
// record always yields the same Result.
package risk

import (
	"slices"

	"github.com/mrsinham/healthforge/internal/assessment"
)

// Fallbacks for missing or unreadable numeric answers.
const (
	DefaultAge = 30
	DefaultBMI = 22.0
	DefaultBP  = 120
)

// MaxItems caps recommendations, positives, and actions.
const MaxItems = 4

const (
	baseScore     = 10
	baseSubScore  = 15
	maxScore      = 99
	maxSubScore   = 100
	symptomCutoff = 2
)

// Symptom groups used for correlation.
var (
	CardiacSymptoms = []string{
		assessment.SymptomChestPain,
		assessment.SymptomShortnessOfBreath,
		assessment.SymptomDizziness,
		assessment.SymptomFatigue,
	}
	DiabeticSymptoms = []string{
		assessment.SymptomThirst,
		assessment.SymptomUrination,
		assessment.SymptomFatigue,
	}
)

// Messages produced by the rules.
const (
	RecObesity        = "BMI indicates obesity range."
	RecHighBP         = "High Blood Pressure detected."
	RecCardiac        = "⚠️ Multiple cardiac symptoms reported. Consult a cardiologist."
	RecDiabetes       = "Symptoms suggest potential diabetes."
	RecMaintainHabits = "Maintain your current healthy habits."

	PositiveYoung      = "Young Age Group"
	PositiveHealthyBMI = "Healthy BMI"
	PositiveNormalBP   = "Normal Blood Pressure"
	PositiveNonSmoker  = "Non-Smoker"
	PositiveActive     = "Active Lifestyle"

	ActDiet         = "Start a calorie-deficit diet plan."
	ActWeightLoss   = "Target 5-10% weight loss in 6 months."
	ActMonitorBP    = "Monitor BP twice daily for a week."
	ActHbA1c        = "Quarterly HbA1c tests."
	ActCardiologist = "Consult a Cardiologist IMMEDIATELY."
	ActBloodSugar   = "Schedule a Fasting Blood Sugar test."
	ActQuitSmoking  = "Begin smoking cessation program."
	ActWalk         = "Walk 30 mins daily."
	ActRoutineCheck = "Routine annual checkup."
)

// Result is the outcome of an evaluation.
type Result struct {
	Score           int      `json:"score"`
	CardiacScore    int      `json:"cardiacScore"`
	MetabolicScore  int      `json:"metabolicScore"`
	Recommendations []string `json:"recommendations"`
	Positives       []string `json:"positives"`
	Actions         []Action `json:"actionPlan"`
	Tier            Tier     `json:"tier"`
}

// Evaluate applies the scoring rules to rec.
func Evaluate(rec assessment.AnswerRecord) Result {
	score := baseScore
	cardiac := baseSubScore
	metabolic := baseSubScore
	var recs, positives []string
	var actions []Action

	age := leadingInt(rec.Age, DefaultAge)
	bmi := leadingFloat(rec.BMI, DefaultBMI)
	bp := leadingInt(rec.BP, DefaultBP)

	if age < 40 {
		positives = append(positives, PositiveYoung)
	}

	if bmi > 30 {
		score += 20
		metabolic += 30
		recs = append(recs, RecObesity)
		actions = append(actions,
			Action{Kind: ActionUrgent, Text: ActDiet},
			Action{Kind: ActionLongterm, Text: ActWeightLoss},
		)
	} else if bmi >= 18.5 && bmi <= 24.9 {
		positives = append(positives, PositiveHealthyBMI)
	}

	if bp > 140 {
		score += 25
		cardiac += 30
		recs = append(recs, RecHighBP)
		actions = append(actions, Action{Kind: ActionUrgent, Text: ActMonitorBP})
	} else {
		positives = append(positives, PositiveNormalBP)
	}

	diabetic := rec.History.Has(assessment.HistoryDiabetes)
	if diabetic {
		score += 20
		metabolic += 40
		actions = append(actions, Action{Kind: ActionRegular, Text: ActHbA1c})
	}
	if rec.History.Has(assessment.HistoryHeartDisease) {
		score += 25
		cardiac += 30
	}

	if rec.Symptoms.CountOf(CardiacSymptoms...) >= symptomCutoff {
		score += 40
		cardiac += 50
		recs = slices.Insert(recs, 0, RecCardiac)
		actions = slices.Insert(actions, 0, Action{Kind: ActionUrgent, Text: ActCardiologist})
	}

	if rec.Symptoms.CountOf(DiabeticSymptoms...) >= symptomCutoff && !diabetic {
		score += 25
		metabolic += 30
		recs = append(recs, RecDiabetes)
		actions = append(actions, Action{Kind: ActionUrgent, Text: ActBloodSugar})
	}

	if rec.Smoke == assessment.SmokeYes {
		score += 20
		cardiac += 20
		actions = append(actions, Action{Kind: ActionUrgent, Text: ActQuitSmoking})
	} else {
		positives = append(positives, PositiveNonSmoker)
	}

	switch rec.Activity {
	case assessment.ActivitySedentary:
		score += 10
		metabolic += 10
		actions = append(actions, Action{Kind: ActionRegular, Text: ActWalk})
	case assessment.ActivityActive:
		positives = append(positives, PositiveActive)
	}

	if len(recs) == 0 {
		recs = append(recs, RecMaintainHabits)
	}
	if len(actions) == 0 {
		actions = append(actions, Action{Kind: ActionRegular, Text: ActRoutineCheck})
	}

	score = clamp(score, 0, maxScore)
	return Result{
		Score:           score,
		CardiacScore:    clamp(cardiac, 0, maxSubScore),
		MetabolicScore:  clamp(metabolic, 0, maxSubScore),
		Recommendations: truncate(dedupe(recs), MaxItems),
		Positives:       truncate(orEmpty(positives), MaxItems),
		Actions:         truncate(actions, MaxItems),
		Tier:            Classify(score),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n:n]
	}
	return items
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

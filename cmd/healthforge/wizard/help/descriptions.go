package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all questionnaire fields
var Texts = map[string]HelpText{
	"age": {
		Title:       "AGE",
		Description: "Your age in years.",
		Details:     "Required. Under 40 counts as a strength.",
	},
	"gender": {
		Title:       "GENDER",
		Description: "Recorded with your answers.",
		Details:     "Required, but it does not change the score.",
	},
	"bmi": {
		Title:       "BODY MASS INDEX",
		Description: "Weight in kilograms divided by height in metres squared.",
		Details: `18.5 - 24.9  healthy range
over 30      obesity range, raises metabolic risk
Decimals are fine (e.g. 22.5).`,
	},
	"bp": {
		Title:       "SYSTOLIC BLOOD PRESSURE",
		Description: "The upper number of a blood pressure reading, in mmHg.",
		Details:     "Above 140 is flagged as high and raises cardiac risk.",
	},
	"activity": {
		Title:       "ACTIVITY LEVEL",
		Description: "How much you move on a typical week.",
		Details: `Sedentary - mostly sitting, little exercise
Moderate  - some walking or light exercise
Active    - regular exercise most days`,
	},
	"smoke": {
		Title:       "SMOKING",
		Description: "Whether you currently smoke.",
		Details:     "Smoking adds to cardiac risk and to the action plan.",
	},
	"history": {
		Title:       "MEDICAL HISTORY",
		Description: "Conditions a doctor has diagnosed.",
		Details:     "Space to toggle, enter to continue. Leave empty if none apply.",
	},
	"symptoms": {
		Title:       "CURRENT SYMPTOMS",
		Description: "Anything you have noticed recently.",
		Details: `Two or more of chest pain, shortness of breath, dizziness or
fatigue point to a cardiac check. Two or more of thirst, frequent
urination or fatigue point to a blood sugar test.`,
	},
}

package diagnosis

// TipsHeading introduces the tip list of a positive diagnosis.
const TipsHeading = "Recovery and Management Tips"

// Diagnosis is what the user sees after a prediction.
type Diagnosis struct {
	Disease Disease
	Label   Label
	Message string
	// Tips is empty unless Label is Positive.
	Tips []string
}

type outcome struct {
	positive string
	negative string
	tips     [5]string
}

var outcomes = map[Disease]outcome{
	Diabetes: {
		positive: "The Person is Diabetic",
		negative: "Not Diabetic",
		tips: [5]string{
			"Maintain a balanced diet: Include fiber, whole grains, and lean proteins.",
			"Exercise regularly: Aim for moderate exercise most days.",
			"Monitor blood sugar levels.",
			"Stay hydrated.",
			"Get adequate sleep: 7-8 hours.",
		},
	},
	Heart: {
		positive: "Has Heart Disease",
		negative: "Does Not Have Heart Disease",
		tips: [5]string{
			"Eat heart-healthy foods: Include vegetables, fruits, whole grains, and lean proteins.",
			"Stay physically active.",
			"Monitor cholesterol and blood pressure.",
			"Quit smoking and avoid excessive alcohol.",
			"Manage stress.",
		},
	},
	Parkinsons: {
		positive: "The person has Parkinson's disease.",
		negative: "The person does not have Parkinson's disease.",
		tips: [5]string{
			"Regular check-ups: Consult with a healthcare provider regularly.",
			"Physical activity: Engage in light exercise, like walking or stretching.",
			"Medication adherence: Take medications as prescribed.",
			"Balanced diet: Include fresh fruits, vegetables, and lean proteins.",
			"Support system: Maintain a strong support network of family and friends.",
		},
	},
}

// Present maps a predicted label to its display text.
func Present(d Disease, label Label) Diagnosis {
	o := outcomes[d]
	if label.Positive() {
		tips := make([]string, len(o.tips))
		copy(tips, o.tips[:])
		return Diagnosis{Disease: d, Label: label, Message: o.positive, Tips: tips}
	}
	return Diagnosis{Disease: d, Label: label, Message: o.negative, Tips: []string{}}
}

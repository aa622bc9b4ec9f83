package distribution

import "github.com/Skufu/healthassistant/internal/apperr"

// Rule splits a continuous column into three ordered labels.
// Values below Low take Labels[0], values in [Low, High) take Labels[1],
// everything else (including NaN) takes Labels[2].
type Rule struct {
	Key    string
	Title  string
	Sheet  string
	Labels [3]string
	Low    float64
	High   float64
	column func(Record) float64
}

func (r Rule) Bin(v float64) string {
	switch {
	case v < r.Low:
		return r.Labels[0]
	case v < r.High:
		return r.Labels[1]
	default:
		return r.Labels[2]
	}
}

// Value extracts the rule's source column from a record.
func (r Rule) Value(rec Record) float64 { return r.column(rec) }

var (
	DiabetesPedigreeRule = Rule{
		Key:    "diabetes_pedigree",
		Title:  "Diabetes Pedigree Function Distribution",
		Sheet:  "Diabetes Pedigree",
		Labels: [3]string{"Low", "Medium", "High"},
		Low:    0.5,
		High:   1.0,
		column: func(r Record) float64 { return r.DiabetesPedigreeFunction },
	}
	GlucoseRule = Rule{
		Key:    "glucose",
		Title:  "Glucose Level Distribution",
		Sheet:  "Glucose",
		Labels: [3]string{"Low", "Medium", "High"},
		Low:    100,
		High:   140,
		column: func(r Record) float64 { return r.Glucose },
	}
	AgeRule = Rule{
		Key:    "age",
		Title:  "Age Distribution",
		Sheet:  "Age",
		Labels: [3]string{"Young", "Middle-aged", "Older"},
		Low:    30,
		High:   50,
		column: func(r Record) float64 { return r.Age },
	}
	BloodPressureRule = Rule{
		Key:    "blood_pressure",
		Title:  "Blood Pressure Distribution",
		Sheet:  "Blood Pressure",
		Labels: [3]string{"Low", "Normal", "High"},
		Low:    60,
		High:   80,
		column: func(r Record) float64 { return r.BloodPressure },
	}
)

// Rules lists the charted rules in display order.
var Rules = []Rule{DiabetesPedigreeRule, GlucoseRule, AgeRule, BloodPressureRule}

func RuleByKey(key string) (Rule, error) {
	for _, r := range Rules {
		if r.Key == key {
			return r, nil
		}
	}
	return Rule{}, apperr.NotFound("binning rule " + key)
}

func BinDiabetesPedigree(v float64) string { return DiabetesPedigreeRule.Bin(v) }

func BinGlucose(v float64) string { return GlucoseRule.Bin(v) }

func BinAge(v float64) string { return AgeRule.Bin(v) }

func BinBloodPressure(v float64) string { return BloodPressureRule.Bin(v) }

package diagnosis

import (
	"math"

	"github.com/Skufu/healthassistant/internal/apperr"
)

// Input is a fully typed feature record for one disease.
type Input interface {
	Disease() Disease
	// Validate reports INVALID_INPUT or PARSE_ERROR before anything reaches an oracle.
	Validate() error
	// Vector returns the features in schema order.
	Vector() []float64
}

// DiabetesInput follows the Pima Indians diabetes column order.
type DiabetesInput struct {
	Pregnancies              float64
	Glucose                  float64
	BloodPressure            float64
	SkinThickness            float64
	Insulin                  float64
	BMI                      float64
	DiabetesPedigreeFunction float64
	Age                      float64
}

func (in *DiabetesInput) slots() [DiabetesFeatureCount]*float64 {
	return [DiabetesFeatureCount]*float64{
		&in.Pregnancies, &in.Glucose, &in.BloodPressure, &in.SkinThickness,
		&in.Insulin, &in.BMI, &in.DiabetesPedigreeFunction, &in.Age,
	}
}

func (in DiabetesInput) Disease() Disease { return Diabetes }

func (in DiabetesInput) Vector() []float64 {
	var v [DiabetesFeatureCount]float64
	for i, p := range in.slots() {
		v[i] = *p
	}
	return v[:]
}

func (in DiabetesInput) Validate() error {
	return checkNonNegative(diabetesSchema, in.Vector())
}

// HeartInput follows the Cleveland heart disease column order.
type HeartInput struct {
	Age      float64
	Sex      float64
	CP       float64
	Trestbps float64
	Chol     float64
	FBS      float64
	Restecg  float64
	Thalach  float64
	Exang    float64
	Oldpeak  float64
	Slope    float64
	CA       float64
	Thal     float64
}

func (in *HeartInput) slots() [HeartFeatureCount]*float64 {
	return [HeartFeatureCount]*float64{
		&in.Age, &in.Sex, &in.CP, &in.Trestbps, &in.Chol, &in.FBS, &in.Restecg,
		&in.Thalach, &in.Exang, &in.Oldpeak, &in.Slope, &in.CA, &in.Thal,
	}
}

func (in HeartInput) Disease() Disease { return Heart }

func (in HeartInput) Vector() []float64 {
	var v [HeartFeatureCount]float64
	for i, p := range in.slots() {
		v[i] = *p
	}
	return v[:]
}

func (in HeartInput) Validate() error {
	return checkNonNegative(heartSchema, in.Vector())
}

// ParkinsonsInput holds the 22 voice measurements of the UCI Parkinson's dataset.
type ParkinsonsInput struct {
	Fo            float64
	Fhi           float64
	Flo           float64
	JitterPercent float64
	JitterAbs     float64
	RAP           float64
	PPQ           float64
	DDP           float64
	Shimmer       float64
	ShimmerDB     float64
	APQ3          float64
	APQ5          float64
	APQ           float64
	DDA           float64
	NHR           float64
	HNR           float64
	RPDE          float64
	DFA           float64
	Spread1       float64
	Spread2       float64
	D2            float64
	PPE           float64
}

func (in *ParkinsonsInput) slots() [ParkinsonsFeatureCount]*float64 {
	return [ParkinsonsFeatureCount]*float64{
		&in.Fo, &in.Fhi, &in.Flo, &in.JitterPercent, &in.JitterAbs,
		&in.RAP, &in.PPQ, &in.DDP, &in.Shimmer, &in.ShimmerDB,
		&in.APQ3, &in.APQ5, &in.APQ, &in.DDA, &in.NHR,
		&in.HNR, &in.RPDE, &in.DFA, &in.Spread1, &in.Spread2,
		&in.D2, &in.PPE,
	}
}

func (in ParkinsonsInput) Disease() Disease { return Parkinsons }

func (in ParkinsonsInput) Vector() []float64 {
	var v [ParkinsonsFeatureCount]float64
	for i, p := range in.slots() {
		v[i] = *p
	}
	return v[:]
}

// Validate only rejects non-finite values; voice measures carry no sign constraint.
func (in ParkinsonsInput) Validate() error {
	var bad []string
	for i, v := range in.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, parkinsonsSchema.Fields[i].Key)
		}
	}
	if len(bad) > 0 {
		return apperr.ParseError(bad...)
	}
	return nil
}

// checkNonNegative is a literal value >= 0 test; clinical upper bounds are not enforced.
func checkNonNegative(schema Schema, vector []float64) error {
	var bad []string
	for i, v := range vector {
		if !(v >= 0) {
			bad = append(bad, schema.Fields[i].Key)
		}
	}
	if len(bad) > 0 {
		return apperr.InvalidInput(bad...)
	}
	return nil
}

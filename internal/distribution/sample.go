package distribution

// Record is one row of the Pima Indians diabetes sample.
type Record struct {
	Pregnancies              float64 `json:"pregnancies"`
	Glucose                  float64 `json:"glucose"`
	BloodPressure            float64 `json:"blood_pressure"`
	SkinThickness            float64 `json:"skin_thickness"`
	Insulin                  float64 `json:"insulin"`
	BMI                      float64 `json:"bmi"`
	DiabetesPedigreeFunction float64 `json:"diabetes_pedigree_function"`
	Age                      float64 `json:"age"`
	Outcome                  int     `json:"outcome"`
}

var sampleColumns = struct {
	pregnancies, glucose, bloodPressure, skinThickness, insulin, bmi, pedigree, age []float64
	outcome                                                                        []int
}{
	pregnancies:   []float64{6, 1, 8, 1, 0, 5, 3, 10, 2, 8, 4, 10, 10, 1, 5, 7, 0, 7, 1, 1, 3, 8, 7, 9},
	glucose:       []float64{148, 85, 183, 89, 137, 116, 78, 115, 197, 125, 110, 168, 139, 189, 166, 100, 118, 107, 103, 115, 126, 99, 196, 119},
	bloodPressure: []float64{72, 66, 64, 66, 40, 74, 50, 0, 70, 96, 92, 74, 80, 60, 72, 0, 84, 74, 30, 70, 88, 84, 90, 80},
	skinThickness: []float64{35, 29, 0, 23, 35, 0, 32, 0, 45, 0, 0, 0, 0, 23, 19, 0, 47, 0, 38, 30, 41, 0, 0, 35},
	insulin:       []float64{0, 0, 0, 94, 168, 0, 88, 0, 543, 0, 0, 0, 0, 846, 175, 0, 230, 0, 83, 96, 235, 0, 0, 0},
	bmi:           []float64{33.6, 26.6, 23.3, 28.1, 43.1, 25.6, 31.0, 35.3, 30.5, 0.0, 37.6, 38.0, 27.1, 30.1, 25.8, 30.0, 45.8, 29.6, 43.3, 34.6, 39.3, 35.4, 39.8, 29.0},
	pedigree:      []float64{0.627, 0.351, 0.672, 0.167, 2.288, 0.201, 0.248, 0.134, 0.158, 0.232, 0.191, 0.537, 1.441, 0.398, 0.587, 0.484, 0.551, 0.254, 0.183, 0.529, 0.704, 0.388, 0.451, 0.263},
	age:           []float64{50, 31, 32, 21, 33, 30, 26, 29, 53, 54, 30, 34, 57, 59, 51, 32, 31, 31, 33, 32, 27, 50, 41, 29},
	outcome:       []int{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 1, 1},
}

// SampleRecords returns a fresh copy of the 24 embedded rows.
func SampleRecords() []Record {
	c := sampleColumns
	out := make([]Record, len(c.outcome))
	for i := range out {
		out[i] = Record{
			Pregnancies:              c.pregnancies[i],
			Glucose:                  c.glucose[i],
			BloodPressure:            c.bloodPressure[i],
			SkinThickness:            c.skinThickness[i],
			Insulin:                  c.insulin[i],
			BMI:                      c.bmi[i],
			DiabetesPedigreeFunction: c.pedigree[i],
			Age:                      c.age[i],
			Outcome:                  c.outcome[i],
		}
	}
	return out
}

package diagnosis

// FieldKind controls how a field is collected and rendered.
type FieldKind string

const (
	KindInteger FieldKind = "integer"
	KindDecimal FieldKind = "decimal"
	KindChoice  FieldKind = "choice"
	KindText    FieldKind = "text"
)

// Option is one selectable value of a choice field.
type Option struct {
	Value float64 `json:"value"`
	Name  string  `json:"name"`
}

// Field describes one position of a feature vector.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Step        float64   `json:"step,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Schema is the ordered field list a classifier was trained on.
type Schema struct {
	Disease Disease `json:"-"`
	Slug    string  `json:"disease"`
	Title   string  `json:"title"`
	Fields  []Field `json:"fields"`
}

// Keys returns field keys in vector order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

func (s Schema) Len() int { return len(s.Fields) }

const (
	DiabetesFeatureCount   = 8
	HeartFeatureCount      = 13
	ParkinsonsFeatureCount = 22
)

func integer(key, label string) Field {
	return Field{Key: key, Label: label, Kind: KindInteger, Step: 1}
}

func decimal(key, label string, step float64) Field {
	return Field{Key: key, Label: label, Kind: KindDecimal, Step: step}
}

func choice(key, label string, names ...string) Field {
	opts := make([]Option, len(names))
	for i, n := range names {
		opts[i] = Option{Value: float64(i), Name: n}
	}
	return Field{Key: key, Label: label, Kind: KindChoice, Options: opts}
}

func text(key, label, placeholder string) Field {
	return Field{Key: key, Label: label, Kind: KindText, Placeholder: placeholder}
}

var diabetesSchema = Schema{
	Disease: Diabetes,
	Slug:    "diabetes",
	Title:   "Diabetes Prediction using Machine Learning",
	Fields: []Field{
		integer("pregnancies", "Number of Pregnancies"),
		decimal("glucose", "Glucose Level", 0.1),
		decimal("blood_pressure", "Blood Pressure", 0.1),
		decimal("skin_thickness", "Skin Thickness", 0.1),
		decimal("insulin", "Insulin Level", 0.1),
		decimal("bmi", "BMI", 0.1),
		decimal("diabetes_pedigree_function", "Diabetes Pedigree Function", 0.01),
		integer("age", "Age"),
	},
}

var heartSchema = Schema{
	Disease: Heart,
	Slug:    "heart",
	Title:   "Heart Disease Prediction using Machine Learning",
	Fields: []Field{
		integer("age", "Age"),
		choice("sex", "Sex", "Female", "Male"),
		choice("cp", "Chest Pain Type", "0", "1", "2", "3"),
		integer("trestbps", "Resting Blood Pressure"),
		integer("chol", "Serum Cholestoral (mg/dl)"),
		choice("fbs", "Fasting Blood Sugar > 120 mg/dl", "False", "True"),
		choice("restecg", "Resting Electrocardiographic results", "0", "1", "2"),
		integer("thalach", "Max Heart Rate Achieved"),
		choice("exang", "Exercise Induced Angina", "No", "Yes"),
		decimal("oldpeak", "ST Depression Induced by Exercise", 0.1),
		choice("slope", "Slope of Peak Exercise ST Segment", "0", "1", "2"),
		integer("ca", "Major Vessels Colored by Fluoroscopy"),
		choice("thal", "Thal: 0 = normal; 1 = fixed defect; 2 = reversible defect", "0", "1", "2"),
	},
}

var parkinsonsSchema = Schema{
	Disease: Parkinsons,
	Slug:    "parkinsons",
	Title:   "Parkinson's Disease Prediction using Machine Learning",
	Fields: []Field{
		text("fo", "MDVP: Fo (Hz)", "e.g., 119.992"),
		text("fhi", "MDVP: Fhi (Hz)", "e.g., 157.302"),
		text("flo", "MDVP: Flo (Hz)", "e.g., 74.997"),
		text("jitter_percent", "MDVP: Jitter (%)", "e.g., 0.005"),
		text("jitter_abs", "MDVP: Jitter (Abs)", "e.g., 0.00005"),
		text("rap", "MDVP: RAP", "e.g., 0.003"),
		text("ppq", "MDVP: PPQ", "e.g., 0.005"),
		text("ddp", "Jitter: DDP", "e.g., 0.009"),
		text("shimmer", "MDVP: Shimmer", "e.g., 0.02"),
		text("shimmer_db", "MDVP: Shimmer (dB)", "e.g., 0.17"),
		text("apq3", "Shimmer: APQ3", "e.g., 0.01"),
		text("apq5", "Shimmer: APQ5", "e.g., 0.02"),
		text("apq", "MDVP: APQ", "e.g., 0.03"),
		text("dda", "Shimmer: DDA", "e.g., 0.04"),
		text("nhr", "NHR", "e.g., 0.005"),
		text("hnr", "HNR", "e.g., 21.04"),
		text("rpde", "RPDE", "e.g., 0.43"),
		text("dfa", "DFA", "e.g., 0.66"),
		text("spread1", "Spread1", "e.g., -4.31"),
		text("spread2", "Spread2", "e.g., 0.34"),
		text("d2", "D2", "e.g., 2.45"),
		text("ppe", "PPE", "e.g., 0.13"),
	},
}

// SchemaFor returns the schema for d. Callers must not mutate it.
func SchemaFor(d Disease) Schema {
	switch d {
	case Diabetes:
		return diabetesSchema
	case Heart:
		return heartSchema
	case Parkinsons:
		return parkinsonsSchema
	}
	panic("diagnosis: unknown disease")
}

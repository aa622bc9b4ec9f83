package diagnosis

import "github.com/Skufu/healthassistant/internal/apperr"

// Disease identifies one of the three supported classifiers.
type Disease int

const (
	Diabetes Disease = iota
	Heart
	Parkinsons
)

// Diseases lists every disease in display order.
var Diseases = []Disease{Diabetes, Heart, Parkinsons}

func (d Disease) String() string {
	switch d {
	case Diabetes:
		return "Diabetes"
	case Heart:
		return "Heart Disease"
	case Parkinsons:
		return "Parkinson's"
	}
	return "Unknown"
}

// Slug is the URL and artifact key for the disease.
func (d Disease) Slug() string {
	switch d {
	case Diabetes:
		return "diabetes"
	case Heart:
		return "heart"
	case Parkinsons:
		return "parkinsons"
	}
	return ""
}

func (d Disease) Valid() bool {
	return d >= Diabetes && d <= Parkinsons
}

// ParseDisease resolves a slug produced by Slug.
func ParseDisease(slug string) (Disease, error) {
	for _, d := range Diseases {
		if d.Slug() == slug {
			return d, nil
		}
	}
	return 0, apperr.NotFound("disease " + slug)
}

// Label is a binary classifier output.
type Label int

const (
	Negative Label = 0
	Positive Label = 1
)

func (l Label) Positive() bool { return l == Positive }

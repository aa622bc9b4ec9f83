package diagnosis

import (
	"fmt"

	"github.com/Skufu/healthassistant/internal/apperr"
)

// Oracle is a pre-trained binary classifier. Implementations must be safe
// for concurrent use and must not mutate features.
type Oracle interface {
	Predict(features []float64) (Label, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(features []float64) (Label, error)

func (f OracleFunc) Predict(features []float64) (Label, error) { return f(features) }

// Assessor runs collect → predict → present against a fixed set of oracles.
type Assessor struct {
	oracles map[Disease]Oracle
}

// NewAssessor requires an oracle for every disease.
func NewAssessor(oracles map[Disease]Oracle) (*Assessor, error) {
	owned := make(map[Disease]Oracle, len(Diseases))
	for _, d := range Diseases {
		o, ok := oracles[d]
		if !ok || o == nil {
			return nil, apperr.ModelLoad(fmt.Sprintf("no classifier registered for %s", d.Slug()))
		}
		owned[d] = o
	}
	return &Assessor{oracles: owned}, nil
}

// Assess validates in and, only if it is valid, asks the matching oracle.
func (a *Assessor) Assess(in Input) (Diagnosis, error) {
	d := in.Disease()
	if err := in.Validate(); err != nil {
		return Diagnosis{}, err
	}

	vector := in.Vector()
	if want := SchemaFor(d).Len(); len(vector) != want {
		return Diagnosis{}, apperr.InternalError(fmt.Sprintf("%s vector has %d features, want %d", d.Slug(), len(vector), want))
	}

	label, err := a.oracles[d].Predict(vector)
	if err != nil {
		return Diagnosis{}, apperr.Wrapf(err, "%s prediction failed", d.Slug())
	}
	if label != Negative && label != Positive {
		return Diagnosis{}, apperr.InternalError(fmt.Sprintf("%s classifier returned label %d", d.Slug(), label))
	}
	return Present(d, label), nil
}

// AssessValues collects raw form text for d and assesses it.
func (a *Assessor) AssessValues(d Disease, get ValueFunc) (Diagnosis, error) {
	in, err := Collect(d, get)
	if err != nil {
		return Diagnosis{}, err
	}
	return a.Assess(in)
}

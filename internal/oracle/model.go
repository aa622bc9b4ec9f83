package oracle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Skufu/healthassistant/internal/apperr"
	"github.com/Skufu/healthassistant/internal/diagnosis"
)

// Model kinds understood by the loader.
const (
	KindLogistic = "logistic"
	KindLinear   = "linear"
	KindForest   = "forest"
)

// leaf marks a terminal tree node, matching scikit-learn's TREE_LEAF.
const leaf = -1

// Artifact is the on-disk JSON form of an exported classifier.
type Artifact struct {
	Disease   string    `json:"disease"`
	Kind      string    `json:"kind"`
	Features  []string  `json:"features"`
	Scaler    *Scaler   `json:"scaler,omitempty"`
	Weights   []float64 `json:"weights,omitempty"`
	Intercept float64   `json:"intercept"`
	Threshold *float64  `json:"threshold,omitempty"`
	Trees     []Tree    `json:"trees,omitempty"`
}

// Scaler mirrors a fitted StandardScaler.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is a split when Left != -1; otherwise Value is the positive-class probability.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Model is a validated, immutable classifier.
type Model struct {
	disease   diagnosis.Disease
	kind      string
	scaler    *Scaler
	weights   []float64
	intercept float64
	threshold float64
	trees     []Tree
}

var _ diagnosis.Oracle = (*Model)(nil)

// NewModel checks a against the schema of d.
func NewModel(d diagnosis.Disease, a Artifact) (*Model, error) {
	schema := diagnosis.SchemaFor(d)
	n := schema.Len()

	if a.Disease != "" && a.Disease != d.Slug() {
		return nil, apperr.ModelLoad(fmt.Sprintf("artifact is for %q, expected %q", a.Disease, d.Slug()))
	}
	if len(a.Features) != n {
		return nil, apperr.ModelLoad(fmt.Sprintf("%s artifact lists %d features, schema has %d", d.Slug(), len(a.Features), n))
	}
	for i, key := range schema.Keys() {
		if a.Features[i] != key {
			return nil, apperr.ModelLoad(fmt.Sprintf("%s feature %d is %q, expected %q", d.Slug(), i, a.Features[i], key))
		}
	}
	if a.Scaler != nil {
		if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
			return nil, apperr.ModelLoad(fmt.Sprintf("%s scaler must have %d entries", d.Slug(), n))
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return nil, apperr.ModelLoad(fmt.Sprintf("%s scaler has zero scale for %s", d.Slug(), a.Features[i]))
			}
		}
	}

	m := &Model{
		disease:   d,
		kind:      a.Kind,
		scaler:    a.Scaler,
		intercept: a.Intercept,
		threshold: 0.5,
	}
	if a.Threshold != nil {
		m.threshold = *a.Threshold
	}

	switch a.Kind {
	case KindLogistic, KindLinear:
		if len(a.Weights) != n {
			return nil, apperr.ModelLoad(fmt.Sprintf("%s model has %d weights, expected %d", d.Slug(), len(a.Weights), n))
		}
		m.weights = append([]float64(nil), a.Weights...)
	case KindForest:
		if len(a.Trees) == 0 {
			return nil, apperr.ModelLoad(d.Slug() + " forest has no trees")
		}
		for t, tree := range a.Trees {
			if err := checkTree(tree, n); err != nil {
				return nil, apperr.ModelLoad(fmt.Sprintf("%s tree %d: %v", d.Slug(), t, err))
			}
		}
		m.trees = a.Trees
	default:
		return nil, apperr.ModelLoad(fmt.Sprintf("%s model kind %q is not supported", d.Slug(), a.Kind))
	}
	return m, nil
}

// checkTree requires children to follow their parent so traversal always terminates.
func checkTree(t Tree, features int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, node := range t.Nodes {
		if node.Left == leaf {
			if node.Value < 0 || node.Value > 1 {
				return fmt.Errorf("leaf %d probability %v out of range", i, node.Value)
			}
			continue
		}
		if node.Feature < 0 || node.Feature >= features {
			return fmt.Errorf("node %d splits on feature %d", i, node.Feature)
		}
		if node.Left <= i || node.Right <= i || node.Left >= len(t.Nodes) || node.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid children %d/%d", i, node.Left, node.Right)
		}
	}
	return nil
}

func (m *Model) Disease() diagnosis.Disease { return m.disease }

func (m *Model) Kind() string { return m.kind }

// Predict never mutates features.
func (m *Model) Predict(features []float64) (diagnosis.Label, error) {
	score, err := m.Score(features)
	if err != nil {
		return diagnosis.Negative, err
	}
	if m.kind == KindLinear {
		if score > 0 {
			return diagnosis.Positive, nil
		}
		return diagnosis.Negative, nil
	}
	if score >= m.threshold {
		return diagnosis.Positive, nil
	}
	return diagnosis.Negative, nil
}

// Score is the raw decision value for linear models and the positive-class
// probability otherwise.
func (m *Model) Score(features []float64) (float64, error) {
	n := diagnosis.SchemaFor(m.disease).Len()
	if len(features) != n {
		return 0, apperr.InternalError(fmt.Sprintf("%s model expects %d features, got %d", m.disease.Slug(), n, len(features)))
	}

	x := make([]float64, n)
	copy(x, features)
	if m.scaler != nil {
		floats.Sub(x, m.scaler.Mean)
		floats.Div(x, m.scaler.Scale)
	}

	switch m.kind {
	case KindLogistic:
		return sigmoid(floats.Dot(m.weights, x) + m.intercept), nil
	case KindLinear:
		return floats.Dot(m.weights, x) + m.intercept, nil
	default:
		votes := make([]float64, len(m.trees))
		for i, t := range m.trees {
			votes[i] = walk(t, x)
		}
		return floats.Sum(votes) / float64(len(votes)), nil
	}
}

func walk(t Tree, x []float64) float64 {
	i := 0
	for {
		node := t.Nodes[i]
		if node.Left == leaf {
			return node.Value
		}
		if x[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

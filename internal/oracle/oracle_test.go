package oracle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/healthassistant/internal/apperr"
	"github.com/Skufu/healthassistant/internal/diagnosis"
)

func zeros(n int) []float64 { return make([]float64, n) }

func diabetesArtifact() Artifact {
	w := zeros(diagnosis.DiabetesFeatureCount)
	w[1] = 1
	return Artifact{
		Disease:   "diabetes",
		Kind:      KindLogistic,
		Features:  diagnosis.SchemaFor(diagnosis.Diabetes).Keys(),
		Weights:   w,
		Intercept: -100,
	}
}

func parkinsonsForest() Artifact {
	return Artifact{
		Disease:  "parkinsons",
		Kind:     KindForest,
		Features: diagnosis.SchemaFor(diagnosis.Parkinsons).Keys(),
		Trees: []Tree{
			{Nodes: []Node{
				{Feature: 0, Threshold: 150, Left: 1, Right: 2},
				{Left: leaf, Value: 1},
				{Left: leaf, Value: 0},
			}},
			{Nodes: []Node{{Left: leaf, Value: 0.5}}},
		},
	}
}

func TestLoadBundled(t *testing.T) {
	oracles, err := Load("")
	require.NoError(t, err)
	require.Len(t, oracles, 3)

	diabetic, err := oracles[diagnosis.Diabetes].Predict([]float64{6, 148, 72, 35, 0, 33.6, 0.627, 50})
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Positive, diabetic)

	healthy, err := oracles[diagnosis.Diabetes].Predict([]float64{1, 85, 66, 29, 0, 26.6, 0.351, 31})
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Negative, healthy)

	for _, d := range diagnosis.Diseases {
		m, ok := oracles[d].(*Model)
		require.True(t, ok)
		assert.Equal(t, d, m.Disease())
	}
}

func TestLoadOverrideFallsBackPerFile(t *testing.T) {
	dir := t.TempDir()
	raw, err := json.Marshal(diabetesArtifact())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(diagnosis.Diabetes)), raw, 0o644))

	oracles, err := Load(dir)
	require.NoError(t, err)

	input := []float64{0, 100, 0, 0, 0, 0, 0, 0}
	label, err := oracles[diagnosis.Diabetes].Predict(input)
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Positive, label, "sigmoid(0) meets the 0.5 threshold")

	input[1] = 99.9
	label, err = oracles[diagnosis.Diabetes].Predict(input)
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Negative, label)

	assert.Equal(t, KindLinear, oracles[diagnosis.Parkinsons].(*Model).Kind())
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, apperr.CodeModelLoad, apperr.GetCode(err))
}

func TestLoadCorruptOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(diagnosis.Heart)), []byte("{not json"), 0o644))

	_, err := Load(dir)
	assert.Equal(t, apperr.CodeModelLoad, apperr.GetCode(err))
}

func TestLinearDecisionIsStrict(t *testing.T) {
	m, err := NewModel(diagnosis.Heart, Artifact{
		Kind:     KindLinear,
		Features: diagnosis.SchemaFor(diagnosis.Heart).Keys(),
		Weights:  zeros(diagnosis.HeartFeatureCount),
	})
	require.NoError(t, err)

	label, err := m.Predict(zeros(diagnosis.HeartFeatureCount))
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Negative, label)
}

func TestScalerIsApplied(t *testing.T) {
	a := diabetesArtifact()
	a.Intercept = 0
	a.Scaler = &Scaler{
		Mean:  []float64{0, 120, 0, 0, 0, 0, 0, 0},
		Scale: []float64{1, 20, 1, 1, 1, 1, 1, 1},
	}
	m, err := NewModel(diagnosis.Diabetes, a)
	require.NoError(t, err)

	score, err := m.Score([]float64{0, 140, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, sigmoid(1), score, 1e-12)
}

func TestForestAveragesTrees(t *testing.T) {
	m, err := NewModel(diagnosis.Parkinsons, parkinsonsForest())
	require.NoError(t, err)

	x := zeros(diagnosis.ParkinsonsFeatureCount)
	x[0] = 150
	score, err := m.Score(x)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, score, 1e-12)
	label, _ := m.Predict(x)
	assert.Equal(t, diagnosis.Positive, label)

	x[0] = 150.1
	label, _ = m.Predict(x)
	assert.Equal(t, diagnosis.Negative, label)
}

func TestPredictDoesNotMutateInput(t *testing.T) {
	a := diabetesArtifact()
	a.Scaler = &Scaler{Mean: []float64{1, 1, 1, 1, 1, 1, 1, 1}, Scale: []float64{2, 2, 2, 2, 2, 2, 2, 2}}
	m, err := NewModel(diagnosis.Diabetes, a)
	require.NoError(t, err)

	input := []float64{6, 148, 72, 35, 0, 33.6, 0.627, 50}
	snapshot := append([]float64(nil), input...)
	_, err = m.Predict(input)
	require.NoError(t, err)
	assert.Equal(t, snapshot, input)
}

func TestPredictRejectsWrongLength(t *testing.T) {
	m, err := NewModel(diagnosis.Diabetes, diabetesArtifact())
	require.NoError(t, err)

	_, err = m.Predict([]float64{1, 2, 3})
	assert.Equal(t, apperr.CodeInternalError, apperr.GetCode(err))
}

func TestNewModelValidation(t *testing.T) {
	threshold := 0.7
	cases := map[string]func(a *Artifact){
		"wrong disease":   func(a *Artifact) { a.Disease = "heart" },
		"short features":  func(a *Artifact) { a.Features = a.Features[:7] },
		"renamed feature": func(a *Artifact) { a.Features = append([]string{"preg"}, a.Features[1:]...) },
		"weights length":  func(a *Artifact) { a.Weights = a.Weights[:3] },
		"unknown kind":    func(a *Artifact) { a.Kind = "svm_rbf"; a.Threshold = &threshold },
		"zero scale": func(a *Artifact) {
			a.Scaler = &Scaler{Mean: zeros(8), Scale: []float64{1, 1, 0, 1, 1, 1, 1, 1}}
		},
		"scaler length": func(a *Artifact) { a.Scaler = &Scaler{Mean: zeros(2), Scale: zeros(2)} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := diabetesArtifact()
			a.Features = append([]string(nil), a.Features...)
			mutate(&a)
			_, err := NewModel(diagnosis.Diabetes, a)
			assert.Equal(t, apperr.CodeModelLoad, apperr.GetCode(err))
		})
	}
}

func TestForestValidation(t *testing.T) {
	cases := map[string]func(a *Artifact){
		"no trees":       func(a *Artifact) { a.Trees = nil },
		"empty tree":     func(a *Artifact) { a.Trees[1].Nodes = nil },
		"backward child": func(a *Artifact) { a.Trees[0].Nodes[0].Left = 0 },
		"child overflow": func(a *Artifact) { a.Trees[0].Nodes[0].Right = 9 },
		"feature range":  func(a *Artifact) { a.Trees[0].Nodes[0].Feature = 22 },
		"leaf above one": func(a *Artifact) { a.Trees[0].Nodes[1].Value = 1.5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := parkinsonsForest()
			mutate(&a)
			_, err := NewModel(diagnosis.Parkinsons, a)
			assert.Equal(t, apperr.CodeModelLoad, apperr.GetCode(err))
		})
	}
}

func TestThresholdOverride(t *testing.T) {
	a := diabetesArtifact()
	threshold := 0.9
	a.Threshold = &threshold
	m, err := NewModel(diagnosis.Diabetes, a)
	require.NoError(t, err)

	label, err := m.Predict([]float64{0, 101, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Negative, label)
}

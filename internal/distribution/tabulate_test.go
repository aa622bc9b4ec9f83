package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsAndCounts(counts []Count) ([]string, []int) {
	labels := make([]string, len(counts))
	ns := make([]int, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		ns[i] = c.Count
	}
	return labels, ns
}

func TestSampleHas24Rows(t *testing.T) {
	records := SampleRecords()
	require.Len(t, records, 24)
	assert.Equal(t, Record{
		Pregnancies: 6, Glucose: 148, BloodPressure: 72, SkinThickness: 35, Insulin: 0,
		BMI: 33.6, DiabetesPedigreeFunction: 0.627, Age: 50, Outcome: 1,
	}, records[0])

	records[0].Glucose = -1
	assert.Equal(t, 148.0, SampleRecords()[0].Glucose)
}

func TestTabulateSample(t *testing.T) {
	records := SampleRecords()
	cases := []struct {
		rule   Rule
		labels []string
		counts []int
	}{
		{GlucoseRule, []string{"Medium", "High", "Low"}, []int{13, 7, 4}},
		{AgeRule, []string{"Middle-aged", "Older", "Young"}, []int{12, 7, 5}},
		{BloodPressureRule, []string{"Normal", "High", "Low"}, []int{11, 8, 5}},
		{DiabetesPedigreeRule, []string{"Low", "Medium", "High"}, []int{15, 7, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.rule.Key, func(t *testing.T) {
			counts := Tabulate(tc.rule, records)
			labels, ns := labelsAndCounts(counts)
			assert.Equal(t, tc.labels, labels)
			assert.Equal(t, tc.counts, ns)

			var total int
			var pct float64
			for _, c := range counts {
				total += c.Count
				pct += c.Percent
			}
			assert.Equal(t, 24, total)
			assert.InDelta(t, 100, pct, 1e-9)
		})
	}
}

func TestPositiveRate(t *testing.T) {
	counts := Tabulate(GlucoseRule, SampleRecords())
	byLabel := map[string]Count{}
	for _, c := range counts {
		byLabel[c.Label] = c
	}
	assert.InDelta(t, 1.0, byLabel["High"].PositiveRate, 1e-12)
	assert.InDelta(t, 0.25, byLabel["Low"].PositiveRate, 1e-12)
}

func TestTabulateOmitsEmptyLabelsAndBreaksTiesByRuleOrder(t *testing.T) {
	records := []Record{{Age: 60}, {Age: 20}, {Age: 61}, {Age: 21}}
	labels, ns := labelsAndCounts(Tabulate(AgeRule, records))
	assert.Equal(t, []string{"Young", "Older"}, labels)
	assert.Equal(t, []int{2, 2}, ns)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(AgeRule, []Record{{Age: 20}, {Age: 30}, {Age: 40}})
	require.NoError(t, err)
	assert.InDelta(t, 30, s.Mean, 1e-12)
	assert.InDelta(t, 30, s.Median, 1e-12)
	assert.Equal(t, 20.0, s.Min)
	assert.Equal(t, 40.0, s.Max)
	assert.InDelta(t, 8.16496580927726, s.StdDev, 1e-9)

	_, err = Summarize(AgeRule, nil)
	assert.Error(t, err)
}

func TestNewDataset(t *testing.T) {
	ds, err := NewDataset(SampleRecords())
	require.NoError(t, err)
	assert.Equal(t, 24, ds.Len())

	charts := ds.Charts()
	require.Len(t, charts, 4)
	titles := []string{}
	for _, c := range charts {
		titles = append(titles, c.Title)
		assert.Equal(t, 24, c.Total)
		assert.Equal(t, Palette, c.Colors)
	}
	assert.Equal(t, []string{
		"Diabetes Pedigree Function Distribution",
		"Glucose Level Distribution",
		"Age Distribution",
		"Blood Pressure Distribution",
	}, titles)

	glucose, ok := ds.Chart("glucose")
	require.True(t, ok)
	assert.Equal(t, 85.0, ds.Records()[1].Glucose)
	assert.Equal(t, 78.0, glucose.Summary.Min)
	assert.Equal(t, 197.0, glucose.Summary.Max)

	_, ok = ds.Chart("nope")
	assert.False(t, ok)
}

func TestNewDatasetRejectsEmpty(t *testing.T) {
	_, err := NewDataset(nil)
	assert.Error(t, err)
}

package distribution

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Skufu/healthassistant/internal/apperr"
)

// Palette is handed to chart renderers, one colour per slice.
var Palette = []string{"#A0C4FF", "#FFB5A7", "#FF99AC"}

// Count is one slice of a pie chart.
type Count struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	// PositiveRate is the share of records in this label with Outcome == 1.
	PositiveRate float64 `json:"positive_rate"`
}

// Summary describes the raw column behind a chart.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

type Chart struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Colors  []string `json:"colors"`
	Total   int      `json:"total"`
	Counts  []Count  `json:"counts"`
	Summary Summary  `json:"summary"`
}

// Tabulate counts records per label, largest first. Labels with no records are left out.
func Tabulate(rule Rule, records []Record) []Count {
	tally := map[string]int{}
	positives := map[string]int{}
	for _, rec := range records {
		label := rule.Bin(rule.Value(rec))
		tally[label]++
		if rec.Outcome == 1 {
			positives[label]++
		}
	}

	counts := make([]Count, 0, len(rule.Labels))
	for _, label := range rule.Labels {
		n := tally[label]
		if n == 0 {
			continue
		}
		counts = append(counts, Count{
			Label:        label,
			Count:        n,
			Percent:      float64(n) * 100 / float64(len(records)),
			PositiveRate: float64(positives[label]) / float64(n),
		})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// Summarize computes descriptive statistics for the rule's column.
func Summarize(rule Rule, records []Record) (Summary, error) {
	data := make(stats.Float64Data, len(records))
	for i, rec := range records {
		data[i] = rule.Value(rec)
	}

	var (
		s   Summary
		err error
	)
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	return s, nil
}

// Dataset is an immutable record set with its charts computed up front.
type Dataset struct {
	records []Record
	charts  []Chart
}

func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, apperr.New(apperr.CodeInvalidInput, "dataset has no records")
	}
	owned := append([]Record(nil), records...)

	charts := make([]Chart, 0, len(Rules))
	for _, rule := range Rules {
		summary, err := Summarize(rule, owned)
		if err != nil {
			return nil, apperr.Wrapf(err, "summarize %s", rule.Key)
		}
		charts = append(charts, Chart{
			Key:     rule.Key,
			Title:   rule.Title,
			Colors:  Palette,
			Total:   len(owned),
			Counts:  Tabulate(rule, owned),
			Summary: summary,
		})
	}
	return &Dataset{records: owned, charts: charts}, nil
}

// Len is the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Records returns a copy of the rows.
func (ds *Dataset) Records() []Record {
	return append([]Record(nil), ds.records...)
}

// Charts returns the precomputed charts. Callers must treat them as read-only.
func (ds *Dataset) Charts() []Chart {
	return append([]Chart(nil), ds.charts...)
}

func (ds *Dataset) Chart(key string) (Chart, bool) {
	for _, c := range ds.charts {
		if c.Key == key {
			return c, true
		}
	}
	return Chart{}, false
}

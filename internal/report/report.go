// Package report assembles a submitted result into a printable report.
package report

import (
	"time"

	"github.com/minatgo/minatgo/internal/riasec"
)

// Row is one line of the per-category table.
type Row struct {
	Category riasec.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
	Percent  int             `json:"percent"`
	Dominant bool            `json:"dominant"`
}

// Report is everything shown on the result page.
type Report struct {
	Rows            []Row                           `json:"rows"`
	Dominant        []riasec.Category               `json:"dominant"`
	Recommendations []riasec.CategoryRecommendation `json:"recommendations"`
	Answered        int                             `json:"answered"`
	Total           int                             `json:"total"`
	GeneratedAt     time.Time                       `json:"generated_at"`
	Insight         string                          `json:"insight,omitempty"`
}

// Build derives the report for answers over pairs. Rows follow canonical
// category order.
func Build(answers riasec.Answers, pairs riasec.PairMap) Report {
	return FromResult(riasec.Evaluate(answers, pairs), len(pairs))
}

// FromResult lays out an already evaluated result.
func FromResult(res riasec.Result, total int) Report {
	rows := make([]Row, 0, len(riasec.All))
	for _, c := range riasec.All {
		rows = append(rows, Row{
			Category: c,
			Label:    c.Label(),
			Count:    res.Counts[c],
			Percent:  res.Percent[c],
			Dominant: res.IsDominant(c),
		})
	}
	return Report{
		Rows:            rows,
		Dominant:        res.Dominant,
		Recommendations: riasec.RecommendAll(res.Dominant),
		Answered:        res.Answered,
		Total:           total,
		GeneratedAt:     time.Now(),
	}
}

// Package calc turns one parsed form row into a final admission score.
package calc

import (
	"github.com/nsip/otf-score/internal/convert"
)

// Source names the test that supplied the IBT-equivalent of a result.
type Source string

const (
	SourceIBT   Source = "ibt"
	SourceITP   Source = "itp"
	SourceIELTS Source = "ielts"
	SourceNone  Source = "none"
)

// Row is one parsed input row. A nil score is missing; a zero score was
// entered as zero.
type Row struct {
	ID    string
	GPA   *float64
	IBT   *float64
	ITP   *float64
	IELTS *float64
}

// Result is the outcome of one row. Bonus is carried but always zero and
// is not part of FinalScore.
type Result struct {
	ID         string   `json:"id"`
	GPA        float64  `json:"gpa"`
	IBT        float64  `json:"ibt"`
	ITP        *float64 `json:"itp"`
	IELTS      *float64 `json:"ielts"`
	Bonus      float64  `json:"bonus"`
	FinalScore float64  `json:"finalScore"`
	Source     Source   `json:"source"`
	Skipped    []string `json:"skipped,omitempty"`
}

// Calculator applies one Scheme to rows.
type Calculator struct {
	scheme Scheme
}

// New returns a calculator bound to one scheme.
func New(s Scheme) *Calculator {
	return &Calculator{scheme: s}
}

// Scheme returns the scheme the calculator was built with.
func (c *Calculator) Scheme() Scheme {
	return c.scheme
}

// Calculate scores a single row. The IBT-equivalent comes from the first of
// IBT, ITP and IELTS that is present and in range; scores that fail
// conversion are listed in Skipped and treated as missing. With no usable
// test score the IBT-equivalent is zero.
func (c *Calculator) Calculate(row Row) Result {
	res := Result{
		ID:     row.ID,
		ITP:    row.ITP,
		IELTS:  row.IELTS,
		Source: SourceNone,
	}

	if row.GPA != nil {
		if convert.IsValidScore(*row.GPA, convert.GPA) {
			res.GPA = *row.GPA
		} else {
			res.Skipped = append(res.Skipped, string(convert.GPA))
		}
	}

	conv := c.scheme.Converter
	candidates := []struct {
		source Source
		score  *float64
		toIBT  func(float64) (float64, error)
	}{
		{SourceIBT, row.IBT, func(v float64) (float64, error) {
			return v, convert.CheckScore(v, convert.TOEFL)
		}},
		{SourceITP, row.ITP, intConv(conv.ITPToIBT)},
		{SourceIELTS, row.IELTS, intConv(conv.IELTSToIBT)},
	}

	for _, cand := range candidates {
		if cand.score == nil {
			continue
		}
		ibt, err := cand.toIBT(*cand.score)
		if err != nil {
			res.Skipped = append(res.Skipped, string(cand.source))
			continue
		}
		res.IBT = ibt
		res.Source = cand.source
		break
	}

	res.FinalScore = CalculateFinalScore(c.scheme.Formula, res.GPA, res.IBT)
	return res
}

// CalculateAll scores rows independently and returns results in input
// order.
func (c *Calculator) CalculateAll(rows []Row) []Result {
	out := make([]Result, 0, len(rows))
	for _, r := range rows {
		out = append(out, c.Calculate(r))
	}
	return out
}

func intConv(f func(float64) (int, error)) func(float64) (float64, error) {
	return func(v float64) (float64, error) {
		ibt, err := f(v)
		return float64(ibt), err
	}
}

package calc

import (
	"github.com/pkg/errors"

	"github.com/nsip/otf-score/internal/convert"
)

// Formula blends a GPA and an IBT-equivalent score into a final score.
type Formula interface {
	Name() string
	Score(gpa, ibt float64) float64
}

// EqualWeight gives GPA and test score 50 points each.
type EqualWeight struct{}

func (EqualWeight) Name() string { return "equal-weight" }

func (EqualWeight) Score(gpa, ibt float64) float64 {
	return (gpa/4.0)*50 + (ibt/120)*50
}

// DocumentScore stands in for the document-review component until it is
// collected as input.
const DocumentScore = 1.512

// Weighted gives GPA 40 points, test score 45 points, plus DocumentScore.
type Weighted struct{}

func (Weighted) Name() string { return "weighted" }

func (Weighted) Score(gpa, ibt float64) float64 {
	return (gpa/4.0)*40 + (ibt/120)*45 + DocumentScore
}

// CalculateFinalScore applies f. It never fails.
func CalculateFinalScore(f Formula, gpa, ibt float64) float64 {
	return f.Score(gpa, ibt)
}

// Scheme is one conversion strategy paired with the formula it was
// designed with. A scheme is chosen once, when the process is configured.
type Scheme struct {
	Converter convert.Converter
	Formula   Formula
}

// SchemeFor pairs the proportional strategy with EqualWeight and the table
// strategy with Weighted.
func SchemeFor(strategy string, opts ...convert.Option) (Scheme, error) {
	c, err := convert.New(strategy, opts...)
	if err != nil {
		return Scheme{}, err
	}
	switch c.Name() {
	case "proportional":
		return Scheme{Converter: c, Formula: EqualWeight{}}, nil
	case "table":
		return Scheme{Converter: c, Formula: Weighted{}}, nil
	}
	return Scheme{}, errors.Errorf("no formula paired with strategy %q", c.Name())
}

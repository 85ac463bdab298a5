// Package convert brings TOEIC, ITP and IELTS scores onto the TOEFL-IBT scale.
package convert

import (
	"github.com/pkg/errors"
)

// ScoreType tags one of the score scales known to the converter.
type ScoreType string

const (
	TOEIC ScoreType = "toeic"
	ITP   ScoreType = "itp"
	IELTS ScoreType = "ielts"
	TOEFL ScoreType = "toefl"
	GPA   ScoreType = "gpa"
)

// ErrUnknownScoreType is returned by GetScoreRange for a tag it does not know.
var ErrUnknownScoreType = errors.New("unknown score type")

// Bounds is the closed legal domain of a score scale.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether score lies inside the bounds.
func (b Bounds) Contains(score float64) bool {
	return score >= b.Min && score <= b.Max
}

var bounds = map[ScoreType]Bounds{
	TOEIC: {Min: 0, Max: 990},
	ITP:   {Min: 0, Max: 677},
	IELTS: {Min: 0, Max: 9.0},
	TOEFL: {Min: 0, Max: 120},
	GPA:   {Min: 0, Max: 4.3},
}

// ParseScoreType maps a case-sensitive tag onto a ScoreType. "ibt" is
// accepted as an alias for toefl.
func ParseScoreType(tag string) (ScoreType, error) {
	if tag == "ibt" {
		return TOEFL, nil
	}
	t := ScoreType(tag)
	if _, ok := bounds[t]; !ok {
		return "", errors.Wrapf(ErrUnknownScoreType, "%q", tag)
	}
	return t, nil
}

// GetScoreRange returns the legal domain for a score type.
func GetScoreRange(t ScoreType) (Bounds, error) {
	b, ok := bounds[t]
	if !ok {
		return Bounds{}, errors.Wrapf(ErrUnknownScoreType, "%q", string(t))
	}
	return b, nil
}

// IsValidScore reports whether score is inside the domain of t. Unknown
// types are never valid.
func IsValidScore(score float64, t ScoreType) bool {
	b, err := GetScoreRange(t)
	if err != nil {
		return false
	}
	return b.Contains(score)
}

// CheckScore fails with a *RangeError when score is outside the domain of
// t, and with ErrUnknownScoreType when t is not a known scale.
func CheckScore(score float64, t ScoreType) error {
	b, err := GetScoreRange(t)
	if err != nil {
		return err
	}
	if !b.Contains(score) {
		return &RangeError{Type: t, Min: b.Min, Max: b.Max, Score: score}
	}
	return nil
}

// check fails with a RangeError when score is outside the domain of t.
func check(score float64, t ScoreType, top float64) error {
	if score < 0 || score > top {
		return &RangeError{Type: t, Min: 0, Max: top, Score: score}
	}
	return nil
}

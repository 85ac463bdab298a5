package convert

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// RangeError is the only failure a conversion can produce: the raw score
// fell outside the legal domain of its scale. Conversions never clamp.
type RangeError struct {
	Type  ScoreType
	Min   float64
	Max   float64
	Score float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s score must be between %s and %s",
		e.Type, strconv.FormatFloat(e.Min, 'f', -1, 64), formatBound(e.Max))
}

// IsRangeError reports whether err, or anything it wraps, is a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// formatBound renders 990 as "990" and 9 as "9.0", the way upper bounds are
// written on score reports.
func formatBound(v float64) string {
	if v < 10 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

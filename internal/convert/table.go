package convert

import "math"

const (
	// fallbackIBT is returned when no band or anchor pair covers a score.
	fallbackIBT = 40
	// fallbackToeic and fallbackIELTS are the inverse results when no band
	// or anchor lies close enough to the queried IBT score.
	fallbackToeic = 410
	fallbackIELTS = 4.0

	ieltsAnchorTolerance  = 0.1
	toeicInverseTolerance = 1
	ieltsInverseTolerance = 2
)

// Table converts through the institutional charts: band lookup for TOEIC
// and ITP, anchor interpolation for IELTS.
type Table struct{}

var (
	_ Converter = Table{}
	_ Inverter  = Table{}
)

func (Table) Name() string { return "table" }

// ToeicToIBT reads the TOEIC chart.
func (Table) ToeicToIBT(score float64) (int, error) {
	if err := check(score, TOEIC, bounds[TOEIC].Max); err != nil {
		return 0, err
	}
	return lookupToeic(score), nil
}

// ITPToIBT rescales the ITP score onto 0..990 and reads the TOEIC chart.
func (Table) ITPToIBT(score float64) (int, error) {
	if err := check(score, ITP, bounds[ITP].Max); err != nil {
		return 0, err
	}
	return lookupToeic(score / bounds[ITP].Max * bounds[TOEIC].Max), nil
}

// IELTSToIBT snaps to a nearby anchor or interpolates between the two
// anchors around the score.
func (Table) IELTSToIBT(score float64) (int, error) {
	if err := check(score, IELTS, bounds[IELTS].Max); err != nil {
		return 0, err
	}

	for _, a := range ieltsToTOEFL {
		if math.Abs(a.IELTS-score) < ieltsAnchorTolerance {
			return a.TOEFL, nil
		}
	}

	for i := 0; i+1 < len(ieltsToTOEFL); i++ {
		cur, next := ieltsToTOEFL[i], ieltsToTOEFL[i+1]
		if cur.IELTS >= score && score >= next.IELTS {
			ratio := (cur.IELTS - score) / (cur.IELTS - next.IELTS)
			return round(float64(cur.TOEFL) + ratio*float64(next.TOEFL-cur.TOEFL)), nil
		}
	}
	return fallbackIBT, nil
}

// IBTToToeic returns the midpoint of the first band whose IBT value is
// within one point of toefl.
func (Table) IBTToToeic(toefl float64) float64 {
	for _, r := range toeicToTOEFL {
		if math.Abs(float64(r.TOEFL)-toefl) <= toeicInverseTolerance {
			return r.Mid()
		}
	}
	return fallbackToeic
}

// IBTToIELTS returns the first anchor whose IBT value is within two points
// of toefl.
func (Table) IBTToIELTS(toefl float64) float64 {
	for _, a := range ieltsToTOEFL {
		if math.Abs(float64(a.TOEFL)-toefl) <= ieltsInverseTolerance {
			return a.IELTS
		}
	}
	return fallbackIELTS
}

// lookupToeic walks the chart from the top and takes the first band whose
// floor the score reaches. On integer scores this is the same as testing
// Min <= score <= Max; it also places fractional scores that sit between
// two integer bands, which the ITP rescale produces.
func lookupToeic(score float64) int {
	for _, r := range toeicToTOEFL {
		if score >= r.Min {
			return r.TOEFL
		}
	}
	return fallbackIBT
}

func round(v float64) int {
	return int(math.Round(v))
}

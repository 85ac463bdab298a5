package convert

// Proportional scales each raw score linearly onto 0..120. It has no
// inverse.
type Proportional struct {
	// ITPMax is the top of the ITP scale: 677 for native ITP scores, 990 to
	// read ITP as a TOEIC score. Zero means 677.
	ITPMax float64
}

var _ Converter = Proportional{}

func (Proportional) Name() string { return "proportional" }

// ToeicToIBT scales 0..990 onto 0..120.
func (Proportional) ToeicToIBT(score float64) (int, error) {
	return scale(score, TOEIC, bounds[TOEIC].Max)
}

// ITPToIBT scales 0..ITPMax onto 0..120.
func (p Proportional) ITPToIBT(score float64) (int, error) {
	top := p.ITPMax
	if top <= 0 {
		top = bounds[ITP].Max
	}
	return scale(score, ITP, top)
}

// IELTSToIBT scales 0..9 onto 0..120.
func (Proportional) IELTSToIBT(score float64) (int, error) {
	return scale(score, IELTS, bounds[IELTS].Max)
}

func scale(score float64, t ScoreType, top float64) (int, error) {
	if err := check(score, t, top); err != nil {
		return 0, err
	}
	return round(score / top * bounds[TOEFL].Max), nil
}

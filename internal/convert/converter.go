package convert

import (
	"sort"

	"github.com/pkg/errors"
)

// Converter maps raw test scores onto the TOEFL-IBT scale. Each method
// fails with a *RangeError when the score is outside its scale.
type Converter interface {
	Name() string
	ToeicToIBT(score float64) (int, error)
	ITPToIBT(score float64) (int, error)
	IELTSToIBT(score float64) (int, error)
}

// Inverter is implemented by strategies that can map an IBT score back onto
// a raw scale. The mapping is many-to-one, so round trips are not exact.
type Inverter interface {
	IBTToToeic(toefl float64) float64
	IBTToIELTS(toefl float64) float64
}

// ToIBT dispatches on the score type. TOEFL scores pass through after a
// range check.
func ToIBT(c Converter, t ScoreType, score float64) (int, error) {
	switch t {
	case TOEIC:
		return c.ToeicToIBT(score)
	case ITP:
		return c.ITPToIBT(score)
	case IELTS:
		return c.IELTSToIBT(score)
	case TOEFL:
		if err := CheckScore(score, TOEFL); err != nil {
			return 0, err
		}
		return round(score), nil
	}
	return 0, errors.Wrapf(ErrUnknownScoreType, "cannot convert %q to ibt", string(t))
}

// Option tunes a strategy built through New.
type Option func(*settings)

type settings struct {
	itpScale float64
}

// WithITPScale sets the top of the ITP scale used by the proportional
// strategy. 990 treats ITP as a TOEIC score; values <= 0 are ignored.
func WithITPScale(top float64) Option {
	return func(s *settings) {
		if top > 0 {
			s.itpScale = top
		}
	}
}

type factory func(settings) Converter

var strategies = map[string]factory{
	"table": func(settings) Converter { return Table{} },
	"proportional": func(s settings) Converter {
		return Proportional{ITPMax: s.itpScale}
	},
}

// DefaultStrategy is the strategy used when none is configured.
const DefaultStrategy = "table"

// New builds the named strategy. It is meant to be called once, when the
// process is configured.
func New(name string, opts ...Option) (Converter, error) {
	if name == "" {
		name = DefaultStrategy
	}
	f, ok := strategies[name]
	if !ok {
		return nil, errors.Errorf("unknown conversion strategy %q (want one of %v)", name, Strategies())
	}
	s := settings{itpScale: bounds[ITP].Max}
	for _, o := range opts {
		o(&s)
	}
	return f(s), nil
}

// Strategies lists the registered strategy names.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for n := range strategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

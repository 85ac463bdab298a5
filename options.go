package otfscore

import (
	"github.com/nsip/otf-score/internal/convert"
	"github.com/nsip/otf-score/internal/util"
	"github.com/pkg/errors"
)

type Option func(*OtfScoreService) error

//
// apply all supplied options to the service
// returns any error encountered while applying the options
//
func (srvc *OtfScoreService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(srvc); err != nil {
			return err
		}
	}
	return nil
}

//
// the name of this service instance, a name is
// generated if none is supplied
//
func Name(name string) Option {
	return func(s *OtfScoreService) error {
		if name != "" {
			s.serviceName = name
			return nil
		}
		s.serviceName = util.GenerateName()
		return nil
	}
}

//
// the id of this service instance, a unique id is
// generated if none is supplied
//
func ID(id string) Option {
	return func(s *OtfScoreService) error {
		if id != "" {
			s.serviceID = id
			return nil
		}
		s.serviceID = util.GenerateID()
		return nil
	}
}

//
// host name/address for this service
//
func Host(hostName string) Option {
	return func(s *OtfScoreService) error {
		if hostName != "" {
			s.serviceHost = hostName
			return nil
		}
		return errors.New("Host() option requires a host name/address")
	}
}

//
// port for this service, if 0 is supplied an
// available port is acquired
//
func Port(port int) Option {
	return func(s *OtfScoreService) error {
		if port < 0 {
			return errors.Errorf("invalid port %d", port)
		}
		if port != 0 {
			s.servicePort = port
			return nil
		}
		p, err := util.AvailablePort()
		if err != nil {
			return errors.Wrap(err, "Port() option cannot find an available port")
		}
		s.servicePort = p
		return nil
	}
}

//
// the score conversion strategy, one of (table|proportional)
// the final-score formula follows from the strategy
//
func Strategy(name string) Option {
	return func(s *OtfScoreService) error {
		if name == "" {
			s.strategy = convert.DefaultStrategy
			return nil
		}
		for _, known := range convert.Strategies() {
			if name == known {
				s.strategy = name
				return nil
			}
		}
		return errors.Errorf("Strategy() option: unknown strategy %q, want one of %v", name, convert.Strategies())
	}
}

//
// top of the ITP scale used by the proportional strategy;
// 677 for native ITP scores, 990 to read ITP as a TOEIC score
//
func ITPScale(top float64) Option {
	return func(s *OtfScoreService) error {
		if top < 0 {
			return errors.Errorf("ITPScale() option: invalid scale %v", top)
		}
		s.itpScale = top
		return nil
	}
}

package otfscore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-score/internal/calc"
	"github.com/nsip/otf-score/internal/convert"
	"github.com/nsip/otf-score/internal/util"
	"github.com/pkg/errors"
)

type OtfScoreService struct {
	// embedded web server to handle score requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// name of the score conversion strategy
	strategy string
	// top of the ITP scale for the proportional strategy
	itpScale float64
	// converts and scores the submitted rows
	calc *calc.Calculator
}

//
// create a new service instance
//
func New(options ...Option) (*OtfScoreService, error) {

	srvc := OtfScoreService{
		serviceHost: "localhost",
		strategy:    convert.DefaultStrategy,
	}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}
	if err := srvc.setOptions(defaults(&srvc)...); err != nil {
		return nil, err
	}

	scheme, err := calc.SchemeFor(srvc.strategy, convert.WithITPScale(srvc.itpScale))
	if err != nil {
		return nil, errors.Wrap(err, "cannot build score scheme")
	}
	srvc.calc = calc.New(scheme)

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(log.INFO)
	srvc.e.Use(middleware.Recover())
	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	srvc.e.POST("/calculate", srvc.buildCalculateHandler())
	srvc.e.GET("/convert", srvc.buildConvertHandler())
	srvc.e.GET("/inverse", srvc.buildInverseHandler())
	srvc.e.GET("/ranges/:type", srvc.buildRangeHandler())

	return &srvc, nil
}

//
// fills identity settings the caller left blank
//
func defaults(s *OtfScoreService) []Option {
	var opts []Option
	if s.serviceName == "" {
		opts = append(opts, Name(""))
	}
	if s.serviceID == "" {
		opts = append(opts, ID(""))
	}
	if s.servicePort == 0 {
		opts = append(opts, Port(0))
	}
	return opts
}

//
// the http handler of the service, for embedding
// or for driving the service in tests
//
func (s *OtfScoreService) Handler() http.Handler {
	return s.e
}

//
// start the service running
//
func (s *OtfScoreService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			s.e.Logger.Error("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// scores every submitted form row
// requires a json array of rows (optionally under "users"), each with
// optional gpa, ibt, itp & ielts values as strings or numbers
//
// results are returned in the order the rows were sent
//
func (s *OtfScoreService) buildCalculateHandler() echo.HandlerFunc {

	scheme := s.calc.Scheme()
	sName := s.serviceName
	sID := s.serviceID

	return func(c echo.Context) error {
		defer util.TimeTrack(time.Now(), "calculate")

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read request body")
		}

		rows, err := parseRows(body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		results := s.calc.CalculateAll(rows)
		for _, r := range results {
			if len(r.Skipped) > 0 {
				c.Logger().Warnf("row %s: ignored out-of-range %v", r.ID, r.Skipped)
			}
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"strategy":         scheme.Converter.Name(),
			"formula":          scheme.Formula.Name(),
			"results":          results,
			"scoreServiceID":   sID,
			"scoreServiceName": sName,
		})
	}
}

//
// converts a single raw score onto the ibt scale
// type: one of (toeic|itp|ielts|toefl)
// score: the raw score
//
func (s *OtfScoreService) buildConvertHandler() echo.HandlerFunc {

	conv := s.calc.Scheme().Converter

	return func(c echo.Context) error {
		t, score, err := scoreQuery(c, "score")
		if err != nil {
			return err
		}

		ibt, err := convert.ToIBT(conv, t, score)
		switch {
		case convert.IsRangeError(err):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		case err != nil:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"type":     t,
			"score":    score,
			"ibt":      ibt,
			"strategy": conv.Name(),
		})
	}
}

//
// maps an ibt score back onto toeic or ielts
// only available when the strategy has an inverse
//
func (s *OtfScoreService) buildInverseHandler() echo.HandlerFunc {

	conv := s.calc.Scheme().Converter

	return func(c echo.Context) error {
		inv, ok := conv.(convert.Inverter)
		if !ok {
			return echo.NewHTTPError(http.StatusNotImplemented,
				fmt.Sprintf("strategy %s has no inverse conversion", conv.Name()))
		}

		t, ibt, err := scoreQuery(c, "ibt")
		if err != nil {
			return err
		}
		if err := convert.CheckScore(ibt, convert.TOEFL); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		var score float64
		switch t {
		case convert.TOEIC:
			score = inv.IBTToToeic(ibt)
		case convert.IELTS:
			score = inv.IBTToIELTS(ibt)
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "inverse type must be one of (toeic|ielts)")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"type":  t,
			"ibt":   ibt,
			"score": score,
		})
	}
}

//
// reports the legal domain of a score type
//
func (s *OtfScoreService) buildRangeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		t, err := convert.ParseScoreType(c.Param("type"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		b, err := convert.GetScoreRange(t)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"type": t,
			"min":  b.Min,
			"max":  b.Max,
		})
	}
}

//
// reads the type and the named numeric query params
//
func scoreQuery(c echo.Context, param string) (convert.ScoreType, float64, error) {
	t, err := convert.ParseScoreType(c.QueryParam("type"))
	if err != nil {
		return "", 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v, err := strconv.ParseFloat(c.QueryParam(param), 64)
	if err != nil {
		return "", 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s must be a number", param))
	}
	return t, v, nil
}

//
// shut the server down gracefully
//
func (s *OtfScoreService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		s.e.Logger.Fatal("could not shut down server cleanly: ", err)
	}
}

func (s *OtfScoreService) PrintConfig() {

	fmt.Println("\n\tOTF-Score Service Configuration")
	fmt.Println("\t---------------------------------")
	fmt.Println()

	s.printID()
	s.printScheme()

}

func (s *OtfScoreService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *OtfScoreService) printScheme() {
	scheme := s.calc.Scheme()
	fmt.Println("\tconversion strategy:\t", scheme.Converter.Name())
	fmt.Println("\tfinal-score formula:\t", scheme.Formula.Name())
	if p, ok := scheme.Converter.(convert.Proportional); ok {
		fmt.Println("\titp scale:\t\t", p.ITPMax)
	}
}

package otfscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nsip/otf-score/internal/calc"
	"github.com/nsip/otf-score/internal/convert"
	"github.com/nsip/otf-score/internal/util"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// Client is the caller side of the score service, used by
// form front-ends written in go
//
type Client struct {
	baseURL string
	headers map[string]string
}

//
// create a client for the service running at host:port
//
func NewClient(host string, port int) *Client {
	return NewClientURL(fmt.Sprintf("http://%s:%d", host, port))
}

//
// create a client for the service at the given base url
//
func NewClientURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

//
// sends the form rows for scoring, results come back
// in the order the rows were sent
//
func (cl *Client) Calculate(ctx context.Context, users []UserInput) ([]calc.Result, error) {

	payload, err := json.Marshal(map[string]interface{}{"users": users})
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode users")
	}

	res, err := util.Fetch(ctx, http.MethodPost, cl.baseURL+"/calculate", cl.headers, bytes.NewReader(payload))
	if err != nil {
		return nil, remoteError(err)
	}

	results := gjson.GetBytes(res, "results")
	if !results.IsArray() {
		return nil, errors.New("score service reply has no results")
	}
	out := []calc.Result{}
	if err := json.Unmarshal([]byte(results.Raw), &out); err != nil {
		return nil, errors.Wrap(err, "cannot decode results")
	}
	return out, nil
}

//
// converts one raw score onto the ibt scale using the
// service's configured strategy
//
func (cl *Client) Convert(ctx context.Context, t convert.ScoreType, score float64) (int, error) {

	q := url.Values{}
	q.Set("type", string(t))
	q.Set("score", strconv.FormatFloat(score, 'f', -1, 64))

	res, err := util.Fetch(ctx, http.MethodGet, cl.baseURL+"/convert?"+q.Encode(), cl.headers, nil)
	if err != nil {
		return 0, remoteError(err)
	}

	ibt := gjson.GetBytes(res, "ibt")
	if !ibt.Exists() {
		return 0, errors.New("score service reply has no ibt value")
	}
	return int(ibt.Int()), nil
}

//
// turns a non-200 reply into an error carrying the
// service's own message
//
func remoteError(err error) error {
	var se *util.StatusError
	if !errors.As(err, &se) {
		return errors.Wrap(err, "score service unreachable")
	}
	msg := gjson.GetBytes(se.Body, "message").String()
	if msg == "" {
		return err
	}
	return errors.Errorf("score service: %s (status %d)", msg, se.Code)
}

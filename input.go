package otfscore

import (
	"math"
	"strconv"
	"strings"

	"github.com/nsip/otf-score/internal/calc"
	"github.com/nsip/otf-score/internal/util"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// UserInput is one row of the score form, exactly as typed.
// Every field is optional; empty or unparsable text counts
// as missing, never as zero.
//
type UserInput struct {
	ID    string `json:"id"`
	GPA   string `json:"gpa"`
	IBT   string `json:"ibt"`
	ITP   string `json:"itp"`
	IELTS string `json:"ielts"`
}

// Row parses the raw text of the form row.
func (u UserInput) Row() calc.Row {
	return calc.Row{
		ID:    u.ID,
		GPA:   parseNumber(u.GPA),
		IBT:   parseNumber(u.IBT),
		ITP:   parseNumber(u.ITP),
		IELTS: parseNumber(u.IELTS),
	}
}

//
// reads the rows of a calculate request. The payload is either
// {"users": [...]} or a bare array of rows; each field may be sent
// as a json string or a json number. Rows without an id get one.
//
func parseRows(body []byte) ([]calc.Row, error) {

	if !gjson.ValidBytes(body) {
		return nil, errors.New("request body is not valid json")
	}

	users := gjson.ParseBytes(body)
	if u := users.Get("users"); u.Exists() {
		users = u
	}
	if !users.IsArray() {
		return nil, errors.New("request must supply an array of users")
	}

	rows := []calc.Row{}
	var rowErr error
	users.ForEach(func(_, u gjson.Result) bool {
		if !u.IsObject() {
			rowErr = errors.Errorf("user row %d is not an object", len(rows)+1)
			return false
		}
		id := u.Get("id").String()
		if id == "" {
			id = util.GenerateID()
		}
		user := UserInput{
			ID:    id,
			GPA:   fieldText(u.Get("gpa")),
			IBT:   fieldText(u.Get("ibt")),
			ITP:   fieldText(u.Get("itp")),
			IELTS: fieldText(u.Get("ielts")),
		}
		rows = append(rows, user.Row())
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}

//
// the text of a form field sent as a json string or number;
// anything else counts as an empty field
//
func fieldText(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		return r.Raw
	case gjson.String:
		return r.Str
	}
	return ""
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return finite(v)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

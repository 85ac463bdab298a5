package otfscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInputRow(t *testing.T) {
	row := UserInput{ID: "7", GPA: " 3.9 ", IBT: "", ITP: "abc", IELTS: "NaN"}.Row()

	assert.Equal(t, "7", row.ID)
	require.NotNil(t, row.GPA)
	assert.Equal(t, 3.9, *row.GPA)
	assert.Nil(t, row.IBT)
	assert.Nil(t, row.ITP)
	assert.Nil(t, row.IELTS)

	row = UserInput{IBT: "0"}.Row()
	require.NotNil(t, row.IBT)
	assert.Equal(t, 0.0, *row.IBT)
}

func TestParseRows(t *testing.T) {
	rows, err := parseRows([]byte(`[{"id":"x","gpa":4,"ibt":null,"itp":true,"ielts":"7.5"}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "x", rows[0].ID)
	assert.Equal(t, 4.0, *rows[0].GPA)
	assert.Nil(t, rows[0].IBT)
	assert.Nil(t, rows[0].ITP)
	assert.Equal(t, 7.5, *rows[0].IELTS)

	rows, err = parseRows([]byte(`{"users":[]}`))
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = parseRows([]byte(`{"users":[{"gpa":1},"x"]}`))
	assert.EqualError(t, err, "user row 2 is not an object")
}

func TestParseRowsMatchesFormText(t *testing.T) {
	rows, err := parseRows([]byte(`[{"id":9,"gpa":3.75,"ibt":"","itp":" 550 ","ielts":1e0}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	want := UserInput{ID: "9", GPA: "3.75", ITP: "550", IELTS: "1"}.Row()
	assert.Equal(t, want, rows[0])
}

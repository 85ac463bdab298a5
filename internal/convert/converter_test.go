package convert

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportional(t *testing.T) {
	p := Proportional{}

	got, err := p.ToeicToIBT(750)
	require.NoError(t, err)
	assert.Equal(t, 91, got)

	got, err = p.ToeicToIBT(990)
	require.NoError(t, err)
	assert.Equal(t, 120, got)

	got, err = p.ITPToIBT(677)
	require.NoError(t, err)
	assert.Equal(t, 120, got)

	got, err = p.IELTSToIBT(6.0)
	require.NoError(t, err)
	assert.Equal(t, 80, got)

	_, err = p.ToeicToIBT(1000)
	assert.True(t, IsRangeError(err))
	_, err = p.IELTSToIBT(9.1)
	assert.EqualError(t, err, "ielts score must be between 0 and 9.0")
	_, err = p.ITPToIBT(700)
	assert.EqualError(t, err, "itp score must be between 0 and 677")
}

func TestProportionalITPAsToeic(t *testing.T) {
	c, err := New("proportional", WithITPScale(990))
	require.NoError(t, err)

	got, err := c.ITPToIBT(750)
	require.NoError(t, err)
	assert.Equal(t, 91, got)

	got, err = c.ITPToIBT(900)
	require.NoError(t, err)
	assert.Equal(t, 109, got)

	_, err = c.ITPToIBT(991)
	assert.EqualError(t, err, "itp score must be between 0 and 990")
}

func TestStrategiesDiffer(t *testing.T) {
	table, err := New("table")
	require.NoError(t, err)
	prop, err := New("proportional")
	require.NoError(t, err)

	a, _ := table.ToeicToIBT(750)
	b, _ := prop.ToeicToIBT(750)
	assert.Equal(t, 83, a)
	assert.Equal(t, 91, b)
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStrategy, c.Name())

	_, isInverter := c.(Inverter)
	assert.True(t, isInverter)

	c, err = New("proportional")
	require.NoError(t, err)
	_, isInverter = c.(Inverter)
	assert.False(t, isInverter)

	_, err = New("linear")
	assert.Error(t, err)

	assert.Equal(t, []string{"proportional", "table"}, Strategies())
}

func TestToIBT(t *testing.T) {
	c := Table{}

	got, err := ToIBT(c, TOEIC, 750)
	require.NoError(t, err)
	assert.Equal(t, 83, got)

	got, err = ToIBT(c, TOEFL, 99.6)
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	_, err = ToIBT(c, TOEFL, 121)
	assert.True(t, IsRangeError(err))

	_, err = ToIBT(c, GPA, 3.0)
	assert.True(t, errors.Is(err, ErrUnknownScoreType))
}

func TestScoreRanges(t *testing.T) {
	tests := []struct {
		typ  ScoreType
		want Bounds
	}{
		{TOEIC, Bounds{0, 990}},
		{IELTS, Bounds{0, 9.0}},
		{TOEFL, Bounds{0, 120}},
		{ITP, Bounds{0, 677}},
		{GPA, Bounds{0, 4.3}},
	}
	for _, tt := range tests {
		got, err := GetScoreRange(tt.typ)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.typ)
	}

	_, err := GetScoreRange("sat")
	assert.True(t, errors.Is(err, ErrUnknownScoreType))

	assert.True(t, IsValidScore(990, TOEIC))
	assert.False(t, IsValidScore(990.5, TOEIC))
	assert.True(t, IsValidScore(0, IELTS))
	assert.False(t, IsValidScore(-0.1, TOEFL))
	assert.False(t, IsValidScore(10, "sat"))
}

func TestParseScoreType(t *testing.T) {
	got, err := ParseScoreType("ibt")
	require.NoError(t, err)
	assert.Equal(t, TOEFL, got)

	got, err = ParseScoreType("ielts")
	require.NoError(t, err)
	assert.Equal(t, IELTS, got)

	_, err = ParseScoreType("IELTS")
	assert.True(t, errors.Is(err, ErrUnknownScoreType))
}

func TestIsRangeErrorWrapped(t *testing.T) {
	_, err := Table{}.ToeicToIBT(-5)
	wrapped := errors.Wrap(err, "row 3")
	assert.True(t, IsRangeError(wrapped))
	assert.False(t, IsRangeError(errors.New("other")))
}

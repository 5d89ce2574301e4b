package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListEncode(t *testing.T) {
	var empty StringList
	raw, err := empty.Encode()
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = StringList{"walking", "reading"}.Encode()
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.JSONEq(t, `["walking","reading"]`, *raw)
}

func TestDecodeStringList(t *testing.T) {
	got, err := DecodeStringList(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := `["a","b"]`
	got, err = DecodeStringList(&s)
	require.NoError(t, err)
	assert.Equal(t, StringList{"a", "b"}, got)

	bad := `not json`
	got, err = DecodeStringList(&bad)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestDateParseAndFormat(t *testing.T) {
	d, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", d.String())

	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)

	assert.Equal(t, "2025-06-16", d.AddDays(1).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2025, 6, 15, 23, 45, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-15", d.String())

	require.NoError(t, d.Scan("2025-01-02"))
	assert.Equal(t, "2025-01-02", d.String())

	assert.Error(t, d.Scan(42))
}

func TestValidMoodScore(t *testing.T) {
	assert.False(t, ValidMoodScore(0))
	assert.True(t, ValidMoodScore(1))
	assert.True(t, ValidMoodScore(10))
	assert.False(t, ValidMoodScore(11))
}

func TestSummaryMood(t *testing.T) {
	cases := []struct {
		meals, water int
		want         string
	}{
		{3, 6, "😄"},
		{4, 8, "😄"},
		{1, 8, "😐"}, // too few meals
		{3, 3, "😐"}, // too little water
		{0, 0, "😐"},
		{2, 4, "😊"},
		{2, 5, "😊"},
		{3, 5, "😊"}, // meals fine, water short of the top tier
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SummaryMood(c.meals, c.water), "meals=%d water=%d", c.meals, c.water)
	}
}

package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		in       string
		expected ID
		desc     string
	}{
		{in: `"1851903211434639361"`, expected: "1851903211434639361", desc: "string id"},
		{in: `1795037516402749442`, expected: "1795037516402749442", desc: "numeric id beyond float precision"},
		{in: `null`, expected: "", desc: "null"},
		{in: `" 42 "`, expected: "42", desc: "padded string"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.in), &id))
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestID_UnmarshalJSONRejectsGarbage(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &id))
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestID_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c,omitempty"`
	}{A: "7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"7","b":null}`, string(b))
	assert.True(t, ID("").IsZero())
}

func TestDateTime_RoundTrip(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
		desc     string
	}{
		{in: `"2024-10-28 09:15:02"`, expected: "2024-10-28 09:15:02", desc: "backend layout"},
		{in: `"2024-10-28"`, expected: "2024-10-28 00:00:00", desc: "date only"},
		{in: `"2024-10-28T09:15:02Z"`, expected: "2024-10-28 09:15:02", desc: "rfc3339"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var d DateTime
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.Equal(t, tc.expected, d.String())

			out, err := json.Marshal(d)
			require.NoError(t, err)
			assert.Equal(t, `"`+tc.expected+`"`, string(out))
		})
	}
}

func TestDateTime_Null(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDateTime_Invalid(t *testing.T) {
	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`"28/10/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20241028`), &d))
}

func TestDateTime_Text(t *testing.T) {
	d := NewDateTime(time.Date(2025, 2, 3, 4, 5, 6, 0, time.Local))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-02-03 04:05:06", string(text))

	var back DateTime
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, back.Equal(d.Time))
}

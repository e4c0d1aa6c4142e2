package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`10`, 10},
		{`"10"`, 10},
		{`"5.0"`, 5},
		{`5.9`, 5},
		{`"-3"`, -3},
		{`-3.7`, -3},
		{`null`, 0},
		{`""`, 0},
		{`" 7 "`, 7},
	}
	for _, tc := range cases {
		var n FlexInt
		require.NoError(t, json.Unmarshal([]byte(tc.in), &n), "input %s", tc.in)
		assert.Equal(t, tc.want, n.Int(), "input %s", tc.in)
	}
}

func TestFlexInt_RejectsNonNumeric(t *testing.T) {
	var n FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"ten"`), &n))
}

func TestFlexInt_PointerDistinguishesAbsent(t *testing.T) {
	var payload struct {
		Delta *FlexInt `json:"delta"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.Nil(t, payload.Delta, "absent field stays nil")

	require.NoError(t, json.Unmarshal([]byte(`{"delta":"4"}`), &payload))
	require.NotNil(t, payload.Delta)
	assert.Equal(t, 4, payload.Delta.Int())
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionListArrayForm(t *testing.T) {
	var q QuizQuestion
	err := json.Unmarshal([]byte(`{"id":1,"question":"?","options":["A","B","C"]}`), &q)
	require.NoError(t, err)
	assert.Equal(t, OptionList{"A", "B", "C"}, q.Options)
}

func TestOptionListEncodedStringForm(t *testing.T) {
	var q QuizQuestion
	err := json.Unmarshal([]byte(`{"id":1,"question":"?","options":"[\"A\",\"B\"]"}`), &q)
	require.NoError(t, err)
	assert.Equal(t, OptionList{"A", "B"}, q.Options)
}

func TestOptionListMalformedEncodingYieldsEmpty(t *testing.T) {
	var q QuizQuestion
	err := json.Unmarshal([]byte(`{"id":1,"question":"?","options":"[\"A\","}`), &q)
	require.NoError(t, err)
	assert.NotNil(t, q.Options)
	assert.Empty(t, q.Options)
}

func TestOptionListUnrecognizedShapeYieldsEmpty(t *testing.T) {
	var q QuizQuestion
	err := json.Unmarshal([]byte(`{"id":1,"question":"?","options":{"a":1}}`), &q)
	require.NoError(t, err)
	assert.Empty(t, q.Options)
}

func TestOptionListRoundTrip(t *testing.T) {
	original := OptionList{"A", "B", "C"}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded OptionList
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionListRoundTrip(t *testing.T) {
	questions := QuestionList{
		{Question: "What is a goroutine?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 2},
		{Question: "What does defer do?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 0},
	}

	value, err := questions.Value()
	require.NoError(t, err)

	var scanned QuestionList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, questions, scanned)
}

func TestQuestionListNilValue(t *testing.T) {
	var questions QuestionList
	value, err := questions.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestQuestionListScanBytes(t *testing.T) {
	var scanned QuestionList
	require.NoError(t, scanned.Scan([]byte(`[{"question":"Q?","options":["A","B","C","D"],"correct_answer":1}]`)))
	require.Len(t, scanned, 1)
	assert.Equal(t, 1, scanned[0].CorrectAnswer)
}

func TestQuestionListScanEmpty(t *testing.T) {
	var scanned QuestionList
	require.NoError(t, scanned.Scan(""))
	assert.Empty(t, scanned)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCorrectIndex(t *testing.T) {
	idx := 3
	tests := []struct {
		name     string
		question Question
		want     int
	}{
		{
			name:     "correct_index wins",
			question: Question{CorrectIndex: &idx, CorrectAnswer: "1"},
			want:     3,
		},
		{
			name:     "legacy numeric answer",
			question: Question{CorrectAnswer: "2"},
			want:     2,
		},
		{
			name:     "non-numeric answer falls back to zero",
			question: Question{CorrectAnswer: "вода"},
			want:     0,
		},
		{
			name:     "both missing",
			question: Question{},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.question.ResolveCorrectIndex())
		})
	}
}

func TestStringArray_ScanAcceptsBytesAndString(t *testing.T) {
	// PostgreSQL отдает jsonb как []byte, SQLite — как string
	var fromBytes StringArray
	require.NoError(t, fromBytes.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringArray{"a", "b"}, fromBytes)

	var fromString StringArray
	require.NoError(t, fromString.Scan(`["c"]`))
	assert.Equal(t, StringArray{"c"}, fromString)

	var fromNil StringArray
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)
}

func TestStringArray_ValueEmptyIsJSONArray(t *testing.T) {
	// Пустой массив сериализуется как [], а не NULL
	v, err := StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestTestQuestionList_RoundTrip(t *testing.T) {
	list := TestQuestionList{
		{ID: 1, Text: "水", Options: StringArray{"water", "fire"}, CorrectIndex: 0},
	}

	v, err := list.Value()
	require.NoError(t, err)

	var decoded TestQuestionList
	require.NoError(t, decoded.Scan(v))
	require.Len(t, decoded, 1)
	assert.Equal(t, "水", decoded[0].Text)
	assert.Equal(t, 0, decoded[0].CorrectIndex)
}

func TestIsValidOption(t *testing.T) {
	q := Question{Options: StringArray{"a", "b", "c"}}

	assert.True(t, q.IsValidOption(0))
	assert.True(t, q.IsValidOption(2))
	assert.False(t, q.IsValidOption(3))
	assert.False(t, q.IsValidOption(-1))
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionFilter_IsUnfiltered(t *testing.T) {
	levelID := 2

	assert.True(t, QuestionFilter{}.IsUnfiltered())
	assert.True(t, QuestionFilter{Limit: 10}.IsUnfiltered())
	assert.False(t, QuestionFilter{LevelID: &levelID}.IsUnfiltered())
	assert.False(t, QuestionFilter{Chapters: []int{1}}.IsUnfiltered())
	assert.False(t, QuestionFilter{EntryRange: &EntryIDRange{Start: 1, End: 5}}.IsUnfiltered())
}

func TestQuestionFilter_Equal(t *testing.T) {
	levelA := 2
	levelB := 2
	levelC := 3

	tests := []struct {
		name string
		a, b QuestionFilter
		want bool
	}{
		{
			name: "both empty",
			want: true,
		},
		{
			name: "same level by value",
			a:    QuestionFilter{LevelID: &levelA},
			b:    QuestionFilter{LevelID: &levelB},
			want: true,
		},
		{
			name: "different level",
			a:    QuestionFilter{LevelID: &levelA},
			b:    QuestionFilter{LevelID: &levelC},
			want: false,
		},
		{
			name: "nil vs set level",
			a:    QuestionFilter{},
			b:    QuestionFilter{LevelID: &levelA},
			want: false,
		},
		{
			name: "same chapters different source",
			a:    QuestionFilter{Chapters: []int{1}, ChapterSource: ChapterOnQuestion},
			b:    QuestionFilter{Chapters: []int{1}, ChapterSource: ChapterOnEntry},
			want: false,
		},
		{
			name: "chapter source irrelevant without chapters",
			a:    QuestionFilter{ChapterSource: ChapterOnQuestion},
			b:    QuestionFilter{ChapterSource: ChapterOnEntry},
			want: true,
		},
		{
			name: "same range",
			a:    QuestionFilter{EntryRange: &EntryIDRange{Start: 1, End: 10}},
			b:    QuestionFilter{EntryRange: &EntryIDRange{Start: 1, End: 10}},
			want: true,
		},
		{
			name: "different range",
			a:    QuestionFilter{EntryRange: &EntryIDRange{Start: 1, End: 10}},
			b:    QuestionFilter{EntryRange: &EntryIDRange{Start: 1, End: 11}},
			want: false,
		},
		{
			name: "different limit",
			a:    QuestionFilter{Limit: 5},
			b:    QuestionFilter{Limit: 10},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

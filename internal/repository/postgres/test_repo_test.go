package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

func TestTestRepo_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewTestRepo(db)

	test := &entity.Test{
		Title: "Test - n4 - 2025-03-14T15:09:26Z",
		Questions: entity.TestQuestionList{
			{ID: 1, Text: "水", Options: entity.StringArray{"water", "fire"}, CorrectIndex: 0},
			{ID: 2, Text: "火", Options: entity.StringArray{"water", "fire"}, CorrectIndex: 1},
		},
	}

	require.NoError(t, repo.Create(test))
	require.NotZero(t, test.ID)

	// Снимок читается обратно без потерь
	got, err := repo.GetByID(test.ID)
	require.NoError(t, err)
	assert.Equal(t, test.Title, got.Title)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "水", got.Questions[0].Text)
	assert.Equal(t, 1, got.Questions[1].CorrectIndex)
}

func TestTestRepo_EmptySnapshot(t *testing.T) {
	db := newTestDB(t)
	repo := NewTestRepo(db)

	// Пустой снимок сериализуется как [], а не NULL
	test := &entity.Test{Title: "empty"}
	require.NoError(t, repo.Create(test))

	got, err := repo.GetByID(test.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Questions)
}

func TestTestRepo_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTestRepo(db)

	_, err := repo.GetByID(9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

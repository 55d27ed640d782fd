package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/utils"
)

func TestSessionRepoLifecycle(t *testing.T) {
	repo := NewSessionRepository()

	sess := &models.InterviewSession{SessionID: "s1", UserID: "u1"}
	require.NoError(t, repo.Create(sess))
	assert.Error(t, repo.Create(sess), "duplicate ids are rejected")
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	assert.True(t, repo.Delete("s1"))
	assert.False(t, repo.Delete("s1"), "second delete reports absence")
	assert.Equal(t, 0, repo.Count())

	_, err = repo.Get("s1")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestProfileRepoStoresCopies(t *testing.T) {
	repo := NewProfileRepository(time.Hour)

	p := &models.InterviewProfile{ID: "p1", Institution: "과학고", Fields: []string{"물리"}}
	require.NoError(t, repo.Put(p))

	p.Fields[0] = "변경됨"

	got, err := repo.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "물리", got.Fields[0])

	// returned values are copies too
	got.Institution = "다른 기관"
	again, err := repo.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "과학고", again.Institution)
}

func TestProfileRepoEvictsAfterTTL(t *testing.T) {
	repo := NewProfileRepository(20 * time.Millisecond)

	require.NoError(t, repo.Put(&models.InterviewProfile{ID: "p1", Institution: "과학고"}))

	_, err := repo.Get("p1")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = repo.Get("p1")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

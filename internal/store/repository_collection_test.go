package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

func TestCollectionRepository_CreateCollection_SlugCollision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	c := models.Collection{ID: "c-1", OwnerID: "u-1", Name: "mine", ShareSlug: "abcdefghijkl", CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO collections (id,owner_id,name,description,is_public,share_slug,created_at,updated_at)")).
		WithArgs("c-1", "u-1", "mine", "", false, "abcdefghijkl", now.UnixMilli(), now.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO collections").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	require.NoError(t, repo.CreateCollection(context.Background(), c))
	assert.ErrorIs(t, repo.CreateCollection(context.Background(), c), ErrShareSlugTaken)
}

func TestCollectionRepository_GetBySlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM collections WHERE share_slug = $1")).
		WithArgs("slug").
		WillReturnRows(sqlmock.NewRows(collectionColumns).
			AddRow("c-1", "u-1", "mine", "desc", true, "slug", now.UnixMilli(), now.UnixMilli()))
	mock.ExpectQuery("FROM collections WHERE share_slug").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(collectionColumns))

	c, err := repo.GetCollectionBySlug(context.Background(), "slug")
	require.NoError(t, err)
	assert.True(t, c.IsPublic)
	assert.Equal(t, "c-1", c.ID)

	_, err = repo.GetCollectionBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestCollectionRepository_AddTest_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	added := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	m := models.CollectionTest{CollectionID: "c-1", TestID: "t-1", AddedAt: added}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO collection_tests (collection_id,test_id,added_at) VALUES ($1,$2,$3)")).
		WithArgs("c-1", "t-1", added.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO collection_tests").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	require.NoError(t, repo.AddTest(context.Background(), m))
	assert.ErrorIs(t, repo.AddTest(context.Background(), m), ErrAlreadyInCollection)
}

func TestCollectionRepository_RemoveTest_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM collection_tests WHERE collection_id = $1 AND test_id = $2")).
		WithArgs("c-1", "t-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.RemoveTest(context.Background(), "c-1", "t-1"), ErrMembershipNotFound)
}

func TestCollectionRepository_DeleteCollection_Transactional(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM collection_tests WHERE collection_id = $1")).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM collections WHERE id = $1")).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCollection(context.Background(), "c-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_ListCollectionTests_JoinsTests(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM collection_tests ct JOIN tests t ON t.id = ct.test_id WHERE ct.collection_id = $1 ORDER BY ct.added_at ASC")).
		WithArgs("c-1").
		WillReturnRows(testRow(t, sampleTest(time.Now()), "approved"))

	tests, err := repo.ListCollectionTests(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, "t-1", tests[0].ID)
}

func TestCollectionRepository_UpdateShareSlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE collections SET share_slug = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("newslug", now.UnixMilli(), "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateShareSlug(context.Background(), "c-1", "newslug", now))
}

func TestCollectionRepository_PruneOrphanMemberships(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM collection_tests WHERE NOT EXISTS (SELECT 1 FROM tests t WHERE t.id = collection_tests.test_id)")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PruneOrphanMemberships(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

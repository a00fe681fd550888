package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

func TestBannedAccountRepository_BanAndCheck(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBannedAccountRepository(db, logger.Nop())

	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO banned_google_accounts (google_id,email,reason,banned_by,banned_at)")).
		WithArgs("g-1", "spam@example.com", "spam", "admin-1", at.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM banned_google_accounts WHERE google_id = $1")).
		WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM banned_google_accounts").
		WithArgs("g-2").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := repo.BanAccount(context.Background(), models.BannedAccount{
		GoogleID: "g-1", Email: "spam@example.com", Reason: "spam", BannedBy: "admin-1", BannedAt: at,
	})
	require.NoError(t, err)

	banned, err := repo.IsBanned(context.Background(), "g-1")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = repo.IsBanned(context.Background(), "g-2")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestBannedAccountRepository_UnbanMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBannedAccountRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM banned_google_accounts").
		WithArgs("g-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UnbanAccount(context.Background(), "g-1"), ErrBanNotFound)
}

func TestBannedAccountRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBannedAccountRepository(db, logger.Nop())

	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM banned_google_accounts ORDER BY banned_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"google_id", "email", "reason", "banned_by", "banned_at"}).
			AddRow("g-1", "a@b.c", "spam", "admin-1", at.UnixMilli()))

	bans, err := repo.ListBannedAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, bans, 1)
	assert.Equal(t, "g-1", bans[0].GoogleID)
	assert.True(t, bans[0].BannedAt.Equal(at))
}

package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{DB: db, logger: logger.Nop()}, mock
}

func userRow(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		u.ID, u.Email, u.Name, nil, u.GoogleID,
		u.IsAdmin, u.IsSuperAdmin,
		u.BannedFromPendingTests, u.BannedFromPublicCollections, u.BannedFromEngine,
		u.EngineUsageCount, u.EngineResetMonth, u.CreatedAt.UnixMilli(),
	)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{
		ID:        "u-1",
		Email:     "John@Example.com",
		Name:      "John",
		GoogleID:  "g-1",
		CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,name,password_hash,google_id")).
		WithArgs("u-1", "john@example.com", "John", nil, "g-1",
			false, false, false, false, false, 0, 0, now.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "john@example.com" {
		t.Errorf("expected lower-cased email, got %s", created.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{ID: "u-1", Email: "a@b.c"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{ID: "u-1"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}

func TestGetUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	want := models.User{ID: "u-1", Email: "john@example.com", Name: "John", IsAdmin: true, EngineUsageCount: 2, CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("john@example.com").
		WillReturnRows(userRow(want))

	found, err := repo.GetUserByEmail(context.Background(), "JOHN@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "u-1" || !found.IsAdmin || found.EngineUsageCount != 2 {
		t.Errorf("unexpected user: %+v", found)
	}
	if !found.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, found.CreatedAt)
	}
	if found.PasswordHash != "" {
		t.Errorf("expected empty password hash for NULL column")
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetUserByID(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByGoogleID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u-1") // wrong shape → scan error

	mock.ExpectQuery("FROM users WHERE google_id").
		WithArgs("g-1").
		WillReturnRows(rows)

	_, err := repo.GetUserByGoogleID(context.Background(), "g-1")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestLinkGoogleID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET google_id = $1 WHERE id = $2")).
		WithArgs("g-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET google_id").
		WithArgs("g-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.LinkGoogleID(context.Background(), "u-1", "g-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.LinkGoogleID(context.Background(), "missing", "g-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserFlags_OnlySetFields(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	banned := true
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET banned_from_engine = $1 WHERE id = $2")).
		WithArgs(true, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUserFlags(context.Background(), "u-1", models.UserFlagsUpdate{BannedFromEngine: &banned})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateUserFlags_EmptyIsNoop(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	if err := repo.UpdateUserFlags(context.Background(), "u-1", models.UserFlagsUpdate{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestIncrementEngineUsage_SingleCaseStatement(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	month := models.EngineMonth(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET engine_usage_count = CASE WHEN engine_reset_month = $1 THEN engine_usage_count + 1 ELSE 1 END, engine_reset_month = $2 WHERE id = $3")).
		WithArgs(month, month, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementEngineUsage(context.Background(), "u-1", month); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListUsers_IterationError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := userRow(models.User{ID: "u-1"}).RowError(0, errors.New("broken pipe"))
	mock.ExpectQuery("FROM users ORDER BY created_at ASC").WillReturnRows(rows)

	_, err := repo.ListUsers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("expected iteration error, got %v", err)
	}
}

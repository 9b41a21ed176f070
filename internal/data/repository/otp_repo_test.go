package repository

import (
	"context"
	"testing"
	"time"

	"identity-service/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOTP() *entity.OtpRecord {
	now := time.Now()
	return &entity.OtpRecord{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		AccountID: uuid.New(),
		Email:     "user@test.com",
		CodeHash:  "$2a$10$codehash",
		ExpiresAt: now.Add(5 * time.Minute),
		DeleteAt:  now.Add(10 * time.Minute),
	}
}

func otpRows(otp *entity.OtpRecord) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "account_id", "email", "code_hash",
		"expires_at", "delete_at", "used_at", "created_at",
	}).AddRow(
		otp.ID, otp.AccountID, otp.Email, otp.CodeHash,
		otp.ExpiresAt, otp.DeleteAt, otp.UsedAt, otp.CreatedAt,
	)
}

func TestOTPRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())
	otp := newTestOTP()

	mock.ExpectExec("INSERT INTO otp_records").
		WithArgs(otp.ID, otp.AccountID, otp.Email, otp.CodeHash,
			otp.ExpiresAt, otp.DeleteAt, otp.UsedAt, otp.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), otp)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_FindLatestPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())
	otp := newTestOTP()

	mock.ExpectQuery("FROM otp_records").
		WithArgs(otp.Email).
		WillReturnRows(otpRows(otp))

	got, err := repo.FindLatestPending(context.Background(), otp.Email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, otp.ID, got.ID)
	assert.Nil(t, got.UsedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_FindLatestPending_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM otp_records").
		WithArgs("user@test.com").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindLatestPending(context.Background(), "user@test.com")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_MarkUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec("UPDATE otp_records SET used_at").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	marked, err := repo.MarkUsed(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_MarkUsed_AlreadyUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())
	id := uuid.New()

	// Conditional update matches nothing when used_at is already set
	mock.ExpectExec("UPDATE otp_records SET used_at").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	marked, err := repo.MarkUsed(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_DeletePending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	mock.ExpectExec("DELETE FROM otp_records").
		WithArgs("user@test.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err = repo.DeletePending(context.Background(), "user@test.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_PurgeExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOTPRepository(mock, zap.NewNop())

	mock.ExpectExec("DELETE FROM otp_records").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	purged, err := repo.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

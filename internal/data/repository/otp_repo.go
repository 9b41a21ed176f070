package repository

import (
	"context"
	"fmt"

	"identity-service/internal/data/entity"
	"identity-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OtpRecord) error
	// FindLatestPending returns the newest record for the email that has
	// not been verified yet, or nil.
	FindLatestPending(ctx context.Context, email string) (*entity.OtpRecord, error)
	// FindLatestVerified returns the newest record for the email whose
	// used_at is set, or nil.
	FindLatestVerified(ctx context.Context, email string) (*entity.OtpRecord, error)
	DeletePending(ctx context.Context, email string) error
	// MarkUsed sets used_at only if it is still null; reports whether the
	// transition happened so concurrent verifies cannot both win.
	MarkUsed(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// PurgeExpired removes every record past its deletion horizon.
	PurgeExpired(ctx context.Context) (int64, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OtpRecord) error {
	query := `
		INSERT INTO otp_records (id, account_id, email, code_hash,
		                         expires_at, delete_at, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.AccountID,
		otp.Email,
		otp.CodeHash,
		otp.ExpiresAt,
		otp.DeleteAt,
		otp.UsedAt,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP record",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("create OTP record for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) FindLatestPending(ctx context.Context, email string) (*entity.OtpRecord, error) {
	query := `
		SELECT id, account_id, email, code_hash,
		       expires_at, delete_at, used_at, created_at
		FROM otp_records
		WHERE LOWER(email) = LOWER($1)
		  AND used_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	return r.findOne(ctx, query, email, "pending")
}

func (r *otpRepository) FindLatestVerified(ctx context.Context, email string) (*entity.OtpRecord, error) {
	query := `
		SELECT id, account_id, email, code_hash,
		       expires_at, delete_at, used_at, created_at
		FROM otp_records
		WHERE LOWER(email) = LOWER($1)
		  AND used_at IS NOT NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	return r.findOne(ctx, query, email, "verified")
}

func (r *otpRepository) findOne(ctx context.Context, query, email, kind string) (*entity.OtpRecord, error) {
	var otp entity.OtpRecord
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.ID,
		&otp.AccountID,
		&otp.Email,
		&otp.CodeHash,
		&otp.ExpiresAt,
		&otp.DeleteAt,
		&otp.UsedAt,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP record",
			zap.Error(err),
			zap.String("email", email),
			zap.String("kind", kind),
		)
		return nil, fmt.Errorf("find latest %s OTP for %s: %w", kind, email, err)
	}

	return &otp, nil
}

// DeletePending removes unconsumed records so a fresh issue leaves a
// single authoritative pending code per email.
func (r *otpRepository) DeletePending(ctx context.Context, email string) error {
	query := `DELETE FROM otp_records WHERE LOWER(email) = LOWER($1) AND used_at IS NULL`

	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete pending OTP records",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete pending OTP records for %s: %w", email, err)
	}

	return nil
}

func (r *otpRepository) MarkUsed(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE otp_records SET used_at = NOW() WHERE id = $1 AND used_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark OTP record as used",
			zap.Error(err),
			zap.String("otp_id", id.String()),
		)
		return false, fmt.Errorf("mark OTP %s as used: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *otpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM otp_records WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete OTP record",
			zap.Error(err),
			zap.String("otp_id", id.String()),
		)
		return fmt.Errorf("delete OTP record %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP record %s not found", id.String())
	}

	return nil
}

func (r *otpRepository) PurgeExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM otp_records WHERE delete_at < NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to purge expired OTP records", zap.Error(err))
		return 0, fmt.Errorf("purge expired OTP records: %w", err)
	}

	return result.RowsAffected(), nil
}

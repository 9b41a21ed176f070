package repository

import (
	"context"
	"errors"
	"fmt"

	"identity-service/internal/common"
	"identity-service/internal/data/entity"
	"identity-service/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log.With(zap.String("repository", "account")),
	}
}

const accountColumns = `id, email, full_name, company_name, phone, location,
	       time_zone, signature, photo_url, role, plan,
	       access_expires_at, password, created_at, updated_at`

// Create inserts a new account. A unique violation on the email index is
// reported as common.ErrDuplicateEmail.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, full_name, company_name, phone, location,
		                      time_zone, signature, photo_url, role, plan,
		                      access_expires_at, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.Email,
		account.FullName,
		account.CompanyName,
		account.Phone,
		account.Location,
		account.TimeZone,
		account.Signature,
		account.PhotoURL,
		account.Role,
		account.Plan,
		account.AccessExpiresAt,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("create account %s: %w", account.Email, common.ErrDuplicateEmail)
		}
		r.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("email", account.Email),
		)
		return fmt.Errorf("create account %s: %w", account.Email, err)
	}

	return nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
	`

	account, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find account by ID %s: %w", id.String(), err)
	}

	return account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE LOWER(email) = LOWER($1)
	`

	account, err := r.scanOne(r.db.QueryRow(ctx, query, email))
	if err != nil {
		r.log.Error("Failed to find account by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find account by email %s: %w", email, err)
	}

	return account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	query := `
		UPDATE accounts
		SET full_name = $2, company_name = $3, phone = $4, location = $5,
		    time_zone = $6, signature = $7, photo_url = $8, plan = $9,
		    access_expires_at = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		account.ID,
		account.FullName,
		account.CompanyName,
		account.Phone,
		account.Location,
		account.TimeZone,
		account.Signature,
		account.PhotoURL,
		account.Plan,
		account.AccessExpiresAt,
		account.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update account",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return fmt.Errorf("update account %s: %w", account.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update account %s: %w", account.ID.String(), common.ErrNotFound)
	}

	return nil
}

// SetPassword replaces the stored hash. The caller is responsible for
// hashing; plaintext never reaches this layer.
func (r *accountRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE accounts SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to set password",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return fmt.Errorf("set password for account %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set password for account %s: %w", id.String(), common.ErrNotFound)
	}

	return nil
}

func (r *accountRepository) scanOne(row pgx.Row) (*entity.Account, error) {
	var account entity.Account
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.FullName,
		&account.CompanyName,
		&account.Phone,
		&account.Location,
		&account.TimeZone,
		&account.Signature,
		&account.PhotoURL,
		&account.Role,
		&account.Plan,
		&account.AccessExpiresAt,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

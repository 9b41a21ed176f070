package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"identity-service/internal/common"
	"identity-service/internal/data/entity"
	"identity-service/internal/data/repository"
	"identity-service/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// In-memory stand-ins for the persistence layer so service tests exercise
// the real state machine without a database.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return fmt.Errorf("create account %s: %w", account.Email, common.ErrDuplicateEmail)
		}
	}

	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return fmt.Errorf("update account %s: %w", account.ID.String(), common.ErrNotFound)
	}
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) SetPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("set password for account %s: %w", id.String(), common.ErrNotFound)
	}
	account.PasswordHash = passwordHash
	return nil
}

type fakeOTPRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.OtpRecord
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{records: make(map[uuid.UUID]*entity.OtpRecord)}
}

func (r *fakeOTPRepo) Create(_ context.Context, otp *entity.OtpRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *otp
	r.records[otp.ID] = &copied
	return nil
}

func (r *fakeOTPRepo) FindLatestPending(_ context.Context, email string) (*entity.OtpRecord, error) {
	return r.findLatest(email, false), nil
}

func (r *fakeOTPRepo) FindLatestVerified(_ context.Context, email string) (*entity.OtpRecord, error) {
	return r.findLatest(email, true), nil
}

func (r *fakeOTPRepo) findLatest(email string, used bool) *entity.OtpRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *entity.OtpRecord
	for _, otp := range r.records {
		if !strings.EqualFold(otp.Email, email) {
			continue
		}
		if used != (otp.UsedAt != nil) {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}
	if latest == nil {
		return nil
	}
	copied := *latest
	return &copied
}

func (r *fakeOTPRepo) DeletePending(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, otp := range r.records {
		if strings.EqualFold(otp.Email, email) && otp.UsedAt == nil {
			delete(r.records, id)
		}
	}
	return nil
}

func (r *fakeOTPRepo) MarkUsed(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	otp, ok := r.records[id]
	if !ok || otp.UsedAt != nil {
		return false, nil
	}
	now := time.Now()
	otp.UsedAt = &now
	return true, nil
}

func (r *fakeOTPRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("OTP record %s not found", id.String())
	}
	delete(r.records, id)
	return nil
}

func (r *fakeOTPRepo) PurgeExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	now := time.Now()
	for id, otp := range r.records {
		if otp.DeleteAt.Before(now) {
			delete(r.records, id)
			purged++
		}
	}
	return purged, nil
}

// expireAll backdates every record for the email, simulating the clock
// passing the expiry window.
func (r *fakeOTPRepo) expireAll(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, otp := range r.records {
		if strings.EqualFold(otp.Email, email) {
			otp.ExpiresAt = time.Now().Add(-time.Second)
		}
	}
}

func (r *fakeOTPRepo) pendingCount(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, otp := range r.records {
		if strings.EqualFold(otp.Email, email) && otp.UsedAt == nil {
			count++
		}
	}
	return count
}

func (r *fakeOTPRepo) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  bool
	gotIt chan struct{}
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{gotIt: make(chan struct{}, 64)}
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		m.gotIt <- struct{}{}
		return fmt.Errorf("smtp unavailable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	m.gotIt <- struct{}{}
	return nil
}

func (m *fakeMailer) deliveries() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func testConfig() *utils.Config {
	return &utils.Config{
		App:  utils.AppConfig{Name: "identity-service-test"},
		Hash: utils.HashConfig{BcryptCost: bcrypt.MinCost},
		OTP:  utils.OTPConfig{ExpiryMinutes: 5, DeleteAfterMinutes: 10},
	}
}

func testRepos() (*repository.Repository, *fakeAccountRepo, *fakeOTPRepo) {
	accounts := newFakeAccountRepo()
	otps := newFakeOTPRepo()
	return &repository.Repository{Account: accounts, OTP: otps}, accounts, otps
}

package response

import (
	"time"

	"identity-service/internal/data/entity"
)

// AccountResponse never carries the password hash.
type AccountResponse struct {
	ID              string      `json:"id"`
	Email           string      `json:"email"`
	FullName        string      `json:"fullName"`
	CompanyName     string      `json:"companyName"`
	Phone           string      `json:"phone"`
	Location        *string     `json:"location,omitempty"`
	TimeZone        *string     `json:"timeZone,omitempty"`
	Signature       *string     `json:"signature,omitempty"`
	PhotoURL        *string     `json:"photoUrl,omitempty"`
	Role            entity.Role `json:"role"`
	Plan            entity.Plan `json:"plan"`
	AccessExpiresAt *time.Time  `json:"accessExpiresAt,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type AuthResponse struct {
	Account   AccountResponse `json:"account"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func AccountToResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID.String(),
		Email:           account.Email,
		FullName:        account.FullName,
		CompanyName:     account.CompanyName,
		Phone:           account.Phone,
		Location:        account.Location,
		TimeZone:        account.TimeZone,
		Signature:       account.Signature,
		PhotoURL:        account.PhotoURL,
		Role:            account.Role,
		Plan:            account.Plan,
		AccessExpiresAt: account.AccessExpiresAt,
		CreatedAt:       account.CreatedAt,
	}
}

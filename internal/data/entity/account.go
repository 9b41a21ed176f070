package entity

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Plan string

const (
	PlanTrial Plan = "trial"
	PlanPaid  Plan = "paid"
)

type Account struct {
	Base
	Email           string     `db:"email"`
	FullName        string     `db:"full_name"`
	CompanyName     string     `db:"company_name"`
	Phone           string     `db:"phone"`
	Location        *string    `db:"location"`
	TimeZone        *string    `db:"time_zone"`
	Signature       *string    `db:"signature"`
	PhotoURL        *string    `db:"photo_url"`
	Role            Role       `db:"role"`
	Plan            Plan       `db:"plan"`
	AccessExpiresAt *time.Time `db:"access_expires_at"`
	PasswordHash    string     `db:"password"`
}

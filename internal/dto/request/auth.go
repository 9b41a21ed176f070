package request

// SignupRequest carries profile fields only; the server generates a
// temporary password and mails it out of band.
type SignupRequest struct {
	FullName    string  `json:"fullName" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	CompanyName string  `json:"companyName" validate:"required,min=2,max=100"`
	Phone       string  `json:"phone" validate:"required,min=7,max=20"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	TimeZone    *string `json:"timeZone,omitempty" validate:"omitempty,max=64"`
	Signature   *string `json:"signature,omitempty" validate:"omitempty,max=500"`
	Plan        string  `json:"plan,omitempty" validate:"omitempty,oneof=trial paid"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

package request

// UpdateProfileRequest is a partial merge: nil fields are left
// untouched.
type UpdateProfileRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	CompanyName *string `json:"companyName,omitempty" validate:"omitempty,min=2,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	TimeZone    *string `json:"timeZone,omitempty" validate:"omitempty,max=64"`
	Signature   *string `json:"signature,omitempty" validate:"omitempty,max=500"`
}

type UpdatePhotoRequest struct {
	PhotoURL string `json:"photoUrl" validate:"required,url"`
}

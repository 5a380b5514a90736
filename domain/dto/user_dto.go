package dto

// UpdateProfileRequest carries the mutable account fields. Empty fields are
// left untouched.
type UpdateProfileRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

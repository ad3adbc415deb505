package requests

// UpdateProfile deliberately has no role field: role is fixed at registration.
type UpdateProfile struct {
	Fullname    string `json:"fullname" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty" validate:"max=200"`
}

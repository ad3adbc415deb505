package responses

type Auth struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
}

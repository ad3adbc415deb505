package requests

type Register struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	Fullname    string `json:"fullname" validate:"required,max=100"`
	Role        string `json:"role" validate:"required,user_role"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty" validate:"max=200"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

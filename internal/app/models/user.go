package models

type User struct {
	ID          string `bson:"_id,omitempty"`
	Email       string `bson:"email"`
	Password    string `bson:"password"`
	Fullname    string `bson:"fullname"`
	Role        string `bson:"role"`
	PhoneNumber string `bson:"phoneNumber,omitempty"`
	Address     string `bson:"address,omitempty"`
	TimeModel   `bson:",inline"`
}

func (u *User) IsPatient() bool {
	return u.Role == "patient"
}

func (u *User) IsDoctor() bool {
	return u.Role == "doctor"
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

package models

type Appointment struct {
	ID               string `bson:"_id,omitempty"`
	PatientID        string `bson:"patientId"`
	DoctorID         string `bson:"doctorId"`
	Date             string `bson:"date"`
	StartTime        string `bson:"startTime"`
	EndTime          string `bson:"endTime"`
	Status           string `bson:"status"`
	Reason           string `bson:"reason,omitempty"`
	Notes            string `bson:"notes,omitempty"`
	NotificationSent bool   `bson:"notificationSent"`
	TimeModel        `bson:",inline"`
}

func (a *Appointment) IsTerminal() bool {
	return a.Status == "completed" || a.Status == "cancelled"
}

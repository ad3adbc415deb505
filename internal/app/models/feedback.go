package models

// Feedback is write-once: there is no update path anywhere in the system.
type Feedback struct {
	ID            string `bson:"_id,omitempty"`
	AppointmentID string `bson:"appointmentId"`
	PatientID     string `bson:"patientId"`
	DoctorID      string `bson:"doctorId"`
	Rating        int    `bson:"rating"`
	Comment       string `bson:"comment,omitempty"`
	TimeModel     `bson:",inline"`
}

package models

type Notification struct {
	ID           string `bson:"_id,omitempty"`
	UserID       string `bson:"userId"`
	Message      string `bson:"message"`
	Type         string `bson:"type"`
	RelatedID    string `bson:"relatedId,omitempty"`
	IsRead       bool   `bson:"isRead"`
	SentViaEmail bool   `bson:"sentViaEmail"`
	TimeModel    `bson:",inline"`
}

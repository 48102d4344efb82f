package models

import "time"

// Feedback is a message submitted from the public site.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

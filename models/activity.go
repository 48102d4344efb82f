package models

import "time"

// Activity is one line of the append-only recent-activity feed.
type Activity struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

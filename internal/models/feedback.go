package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Sentiment classifies a feedback record.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment validates a raw sentiment string against the known values.
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s), true
	}
	return "", false
}

// Bucket maps a stored sentiment onto one of the three known buckets.
// Edits can store arbitrary values, so unknown or missing sentiments count
// as neutral when aggregating.
func (s Sentiment) Bucket() Sentiment {
	switch s {
	case SentimentPositive, SentimentNegative:
		return s
	default:
		return SentimentNeutral
	}
}

type Feedback struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ManagerID    string        `bson:"manager_id" json:"manager_id"`
	EmployeeID   string        `bson:"employee_id" json:"employee_id"`
	Strengths    string        `bson:"strengths" json:"strengths"`
	Improvements string        `bson:"improvements" json:"improvements"`
	Sentiment    Sentiment     `bson:"sentiment" json:"sentiment"`
	Tags         []string      `bson:"tags" json:"tags"`
	Timestamp    time.Time     `bson:"timestamp" json:"timestamp"`
	Acknowledged bool          `bson:"acknowledged" json:"acknowledged"`
}

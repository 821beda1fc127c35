package models

// Comment is a top-level discussion comment.
type Comment struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"` // unix seconds
	Text      string `json:"text"`
}

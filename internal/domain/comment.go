package domain

import "time"

// Comment is an entity owned by its parent Post: it is created through the
// aggregate root and cannot outlive it. The commenter is a reference, not
// part of the aggregate.
type Comment struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"post_id"`
	CommenterID int64     `json:"commenter_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

package domain

import (
	"strings"
	"time"
)

// Commenter represents someone who writes comments. Comments reference a
// commenter by ID; the commenter has its own identity and lifecycle.
type Commenter struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommenter creates a new Commenter with the given name.
// The ID is assigned by the store on persist.
// Returns an error if validation fails.
func NewCommenter(name string) (*Commenter, error) {
	commenter := &Commenter{
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}

	if err := commenter.Validate(); err != nil {
		return nil, err
	}

	return commenter, nil
}

// Validate checks if the Commenter has valid data.
func (c *Commenter) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCommenterName
	}
	return nil
}

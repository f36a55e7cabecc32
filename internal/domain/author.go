package domain

import (
	"strings"
	"time"
)

// Author represents a user who can own posts. Authors are referenced by
// posts, never owned by them: locking an author blocks future post creation
// but leaves existing posts untouched.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsLocked  bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthor creates a new unlocked Author with the given name.
// The ID is assigned by the store on persist.
// Returns an error if validation fails.
func NewAuthor(name string) (*Author, error) {
	author := &Author{
		Name:      strings.TrimSpace(name),
		IsLocked:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	return author, nil
}

// Validate checks if the Author has valid data.
func (a *Author) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAuthorName
	}
	return nil
}

// Lock marks the author as locked. Locking is idempotent.
func (a *Author) Lock() {
	a.IsLocked = true
}

// Unlock clears the author's locked flag.
func (a *Author) Unlock() {
	a.IsLocked = false
}

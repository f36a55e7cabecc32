package domain

import "strings"

// Tag is a value object: two tags with the same name are interchangeable.
// Tags have no identity or lifecycle of their own; they exist only inside
// the Post that holds them.
type Tag struct {
	Name string `json:"name"`
}

// NewTag creates a Tag from a raw name, trimming surrounding whitespace.
// Returns ErrEmptyTagName if the trimmed name is empty.
func NewTag(name string) (Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Tag{}, ErrEmptyTagName
	}
	return Tag{Name: trimmed}, nil
}

// Equal reports structural equality with another tag.
func (t Tag) Equal(other Tag) bool {
	return t.Name == other.Name
}

// String returns the tag's name.
func (t Tag) String() string {
	return t.Name
}

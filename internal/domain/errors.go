// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an entity ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrTitleTooLong is returned when a post title exceeds MaxTitleLength
	// after trimming.
	ErrTitleTooLong = errors.New("title max is 90 letters")

	// ErrEmptyAuthorName is returned when an author name is empty after trimming.
	ErrEmptyAuthorName = errors.New("author name cannot be empty")

	// ErrEmptyCommenterName is returned when a commenter name is empty after trimming.
	ErrEmptyCommenterName = errors.New("commenter name cannot be empty")

	// ErrEmptyCommentText is returned when a comment's text is empty after trimming.
	ErrEmptyCommentText = errors.New("comment text cannot be empty")

	// ErrEmptyTagName is returned when a tag name is empty after trimming.
	ErrEmptyTagName = errors.New("tag name cannot be empty")
)

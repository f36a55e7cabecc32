package domain

import (
	"errors"
	"strings"
	"time"
)

// MaxTitleLength is the maximum number of characters a post title may have
// after leading and trailing whitespace is trimmed.
const MaxTitleLength = 90

// Post-specific validation errors
var (
	// ErrPostAuthorIDEmpty is returned when a post's author ID is zero.
	ErrPostAuthorIDEmpty = errors.New("post author ID cannot be empty")
)

// Post is the aggregate root of the blog domain. It owns its Comments and
// Tags; Authors and Commenters are referenced by ID only and resolved through
// their own stores. Business rules that span the aggregate live in the
// service layer; the Post itself guards only the boundary of its owned
// collections.
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ViewCount int64     `json:"view_count"`
	Comments  []Comment `json:"comments"`
	Tags      []Tag     `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeTitle trims a raw title and checks it against MaxTitleLength.
// An absent title is represented as the empty string by the caller.
// Returns the trimmed title, or ErrTitleTooLong.
func NormalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if len([]rune(title)) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.AuthorID == 0 {
		return ErrPostAuthorIDEmpty
	}

	if len([]rune(strings.TrimSpace(p.Title))) > MaxTitleLength {
		return ErrTitleTooLong
	}

	return nil
}

// SetTitle sets the post's title to the already-normalized value and bumps
// the update timestamp. Callers normalize via NormalizeTitle first.
func (p *Post) SetTitle(title string) {
	p.Title = title
	p.UpdatedAt = time.Now().UTC()
}

// AddComment appends a comment to the post's owned collection, preserving
// creation order. The comment's ID is assigned by the store on persist.
// Returns a pointer to the appended comment so the caller can read the
// store-assigned ID after the aggregate is saved.
func (p *Post) AddComment(commenterID int64, text string) *Comment {
	comment := Comment{
		PostID:      p.ID,
		CommenterID: commenterID,
		Text:        text,
		CreatedAt:   time.Now().UTC(),
	}
	p.Comments = append(p.Comments, comment)
	return &p.Comments[len(p.Comments)-1]
}

// HasTag reports whether the post already holds a tag with the given name.
// Tags are value objects, so equality is structural.
func (p *Post) HasTag(name string) bool {
	for _, t := range p.Tags {
		if t.Equal(Tag{Name: name}) {
			return true
		}
	}
	return false
}

// AddTag adds a tag to the post's tag set. Adding a tag the post already
// holds is a no-op; the collection behaves as a set keyed by tag name.
// Returns true if the tag was added.
func (p *Post) AddTag(tag Tag) bool {
	if p.HasTag(tag.Name) {
		return false
	}
	p.Tags = append(p.Tags, tag)
	return true
}

// IncrementViewCount bumps the post's view counter by one.
func (p *Post) IncrementViewCount() {
	p.ViewCount++
}

// CommentCount returns the number of comments owned by the post.
func (p *Post) CommentCount() int {
	return len(p.Comments)
}
